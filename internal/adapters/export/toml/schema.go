package toml

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

type accountSchema struct {
	ID    string `toml:"id"`
	Type  string `toml:"type"`
	Login string `toml:"login"`
	// TOML has no null; LDAP accounts simply omit the key.
	Password *string  `toml:"password,omitempty"`
	Tags     []string `toml:"tags"`
}
