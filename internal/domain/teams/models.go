package teams

// Team is an NFL franchise as identified by the stats provider.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Market string `json:"market"`
	Alias  string `json:"alias"`
}

// FullName joins market and nickname, e.g. "Philadelphia Eagles".
func (t Team) FullName() string {
	if t.Market == "" {
		return t.Name
	}
	return t.Market + " " + t.Name
}
