package domain

type ClientMessage struct {
	Type  string `json:"type"`
	Token string `json:"token,omitempty"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

type ServerMessage struct {
	Type        string       `json:"type"`
	Message     string       `json:"message,omitempty"`
	MatchID     string       `json:"matchId,omitempty"`
	Opponent    string       `json:"opponent,omitempty"`
	YourColor   string       `json:"yourColor,omitempty"`
	CurrentTurn string       `json:"currentTurn,omitempty"`
	Move        *Position    `json:"move,omitempty"`
	Player      string       `json:"player,omitempty"`
	Board       [][]int      `json:"board,omitempty"`
	Winner      string       `json:"winner,omitempty"`
	Reason      string       `json:"reason,omitempty"`
	WinningLine *WinningLine `json:"winningLine,omitempty"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
