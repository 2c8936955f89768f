package entity

// State is a point-in-time copy of everything the store holds.
type State struct {
	Books         []Book         `json:"books"`
	Notifications []Notification `json:"notifications"`
	Battery       Battery        `json:"battery"`
	Weight        Weight         `json:"weight"`
	Weather       Weather        `json:"weather"`
	Settings      Settings       `json:"settings"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Books:         append([]Book(nil), s.Books...),
		Notifications: append([]Notification(nil), s.Notifications...),
		Battery:       s.Battery.Clone(),
		Weight:        s.Weight,
		Weather:       s.Weather.Clone(),
		Settings:      s.Settings,
	}
}
