package jeopardy

// Team is a named participant with a running score.
type Team struct {
	name  string
	score int
}

// TeamView is the JSON form of a Team.
type TeamView struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func NewTeam(name string) Team {
	return Team{name: name}
}

func (t Team) Name() string { return t.name }
func (t Team) Score() int   { return t.score }

// SetName renames the team. Empty names are rejected.
func (t *Team) SetName(name string) bool {
	if name == "" {
		return false
	}
	t.name = name
	return true
}

func (t *Team) SetScore(score int) { t.score = score }
func (t *Team) AddScore(delta int) { t.score += delta }

func (t Team) View() TeamView {
	return TeamView{Name: t.name, Score: t.score}
}
