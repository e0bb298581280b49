package models

// Group - учебная группа, к которой привязан чат
type Group string

const (
	K25 Group = "K-25"
)

var groups = []Group{K25}

// Groups возвращает все известные группы
func Groups() []Group {
	return append([]Group(nil), groups...)
}

func ParseGroup(token string) (Group, error) {
	for _, g := range groups {
		if string(g) == token {
			return g, nil
		}
	}
	return "", &TokenError{Kind: "group", Value: token}
}

func (g Group) String() string {
	return string(g)
}
