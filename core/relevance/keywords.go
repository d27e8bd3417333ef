// ABOUTME: Fixed football keyword vocabulary shared by the relevance filter and tag extraction
// ABOUTME: Holds league, club and country/region terms in their display form

package relevance

// Leagues and competitions.
var Leagues = []string{
	"Premier League",
	"La Liga",
	"Serie A",
	"Bundesliga",
	"Ligue 1",
	"Champions League",
	"Europa League",
	"UEFA",
	"AFCON",
	"CAF",
	"FKF Premier League",
	"World Cup",
	"EPL",
}

// Clubs covers the major European sides plus the Kenyan clubs the
// audience follows.
var Clubs = []string{
	"Arsenal",
	"Chelsea",
	"Liverpool",
	"Manchester United",
	"Manchester City",
	"Tottenham",
	"Newcastle",
	"Barcelona",
	"Real Madrid",
	"Atletico Madrid",
	"Juventus",
	"AC Milan",
	"Inter Milan",
	"Napoli",
	"Bayern Munich",
	"Borussia Dortmund",
	"PSG",
	"Gor Mahia",
	"AFC Leopards",
	"Tusker",
	"Harambee Stars",
}

// Regions holds country and region terms.
var Regions = []string{
	"Kenya",
	"England",
	"Spain",
	"Italy",
	"Germany",
	"France",
	"Africa",
	"Nigeria",
	"Ghana",
	"Senegal",
	"Egypt",
	"Morocco",
}

// Vocabulary returns the full keyword list in a stable order:
// leagues first, then clubs, then regions. Tag extraction depends on
// this order being stable across calls.
func Vocabulary() []string {
	vocab := make([]string, 0, len(Leagues)+len(Clubs)+len(Regions))
	vocab = append(vocab, Leagues...)
	vocab = append(vocab, Clubs...)
	vocab = append(vocab, Regions...)
	return vocab
}
