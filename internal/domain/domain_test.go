package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Tag
	}{
		{name: "trims and drops empty entries", input: "a; b ;;c", want: []Tag{{Text: "a"}, {Text: "b"}, {Text: "c"}}},
		{name: "empty input", input: "", want: []Tag{}},
		{name: "whitespace only", input: "   ", want: []Tag{}},
		{name: "separators only", input: " ; ;", want: []Tag{}},
		{name: "single tag", input: "prod", want: []Tag{{Text: "prod"}}},
		{name: "keeps duplicates in order", input: "b;a;b", want: []Tag{{Text: "b"}, {Text: "a"}, {Text: "b"}}},
		{name: "inner spaces preserved", input: " team lead ;ops", want: []Tag{{Text: "team lead"}, {Text: "ops"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagsToString(t *testing.T) {
	assert.Equal(t, "a;b", TagsToString([]Tag{{Text: "a"}, {Text: "b"}}))
	assert.Equal(t, "", TagsToString(nil))
	assert.Equal(t, " a ;;b", TagsToString([]Tag{{Text: " a "}, {Text: ""}, {Text: "b"}}))
}

func TestTagsToStringIsNotStrictInverseOfParseTags(t *testing.T) {
	original := []Tag{{Text: " a "}}

	serialized := TagsToString(original)
	assert.Equal(t, " a ", serialized)

	reparsed := ParseTags(serialized)
	assert.Equal(t, []Tag{{Text: "a"}}, reparsed)
	assert.NotEqual(t, serialized, TagsToString(reparsed))
}

func TestValidateAccount(t *testing.T) {
	long := strings.Repeat("x", MaxLoginLength+1)
	exact := strings.Repeat("x", MaxLoginLength)

	tests := []struct {
		name    string
		account Account
		want    ValidationErrors
	}{
		{
			name:    "local with empty login and password",
			account: Account{Type: AccountTypeLocal, Login: "", Password: StringPtr("")},
			want: ValidationErrors{
				FieldLogin:    "Login is required",
				FieldPassword: "Password is required",
			},
		},
		{
			name:    "ldap skips password check",
			account: Account{Type: AccountTypeLDAP, Login: "x", Password: nil},
			want:    ValidationErrors{},
		},
		{
			name:    "local with nil password",
			account: Account{Type: AccountTypeLocal, Login: "x"},
			want:    ValidationErrors{FieldPassword: "Password is required"},
		},
		{
			name:    "blank login and password",
			account: Account{Type: AccountTypeLocal, Login: "   ", Password: StringPtr("\t ")},
			want: ValidationErrors{
				FieldLogin:    "Login is required",
				FieldPassword: "Password is required",
			},
		},
		{
			name:    "too long fields",
			account: Account{Type: AccountTypeLocal, Login: long, Password: StringPtr(long)},
			want: ValidationErrors{
				FieldLogin:    "Login must not exceed 100 characters",
				FieldPassword: "Password must not exceed 100 characters",
			},
		},
		{
			name:    "exactly at the limit",
			account: Account{Type: AccountTypeLocal, Login: exact, Password: StringPtr(exact)},
			want:    ValidationErrors{},
		},
		{
			name:    "limit counts characters not bytes",
			account: Account{Type: AccountTypeLocal, Login: strings.Repeat("é", MaxLoginLength), Password: StringPtr("p")},
			want:    ValidationErrors{},
		},
		{
			name:    "ldap with long login",
			account: Account{Type: AccountTypeLDAP, Login: long},
			want:    ValidationErrors{FieldLogin: "Login must not exceed 100 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateAccount(tt.account)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) > 0, got.HasErrors())
		})
	}
}

func TestValidationErrorsErrorIsStable(t *testing.T) {
	errs := ValidationErrors{
		FieldPassword: "Password is required",
		FieldLogin:    "Login is required",
	}

	assert.Equal(t, []string{FieldLogin, FieldPassword}, errs.Fields())
	assert.Equal(t, "invalid account: login: Login is required; password: Password is required", errs.Error())
}

func TestParseAccountType(t *testing.T) {
	got, err := ParseAccountType("ldap")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeLDAP, got)

	got, err = ParseAccountType(" Local ")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeLocal, got)

	_, err = ParseAccountType("kerberos")
	require.ErrorIs(t, err, ErrInvalidAccountType)

	assert.False(t, AccountType("").Valid())
}

func TestAccountApplyLeavesAbsentFieldsUntouched(t *testing.T) {
	account := Account{
		ID:       "acc-1",
		Type:     AccountTypeLocal,
		Login:    "alice",
		Password: StringPtr("secret"),
		Tags:     []Tag{{Text: "ops"}},
	}

	got := account.Apply(AccountUpdate{Login: Some("bob")})

	assert.Equal(t, Account{
		ID:       "acc-1",
		Type:     AccountTypeLocal,
		Login:    "bob",
		Password: StringPtr("secret"),
		Tags:     []Tag{{Text: "ops"}},
	}, got)
	assert.Equal(t, "alice", account.Login)
}

func TestAccountApplyExplicitNilPasswordOverwrites(t *testing.T) {
	account := Account{Type: AccountTypeLocal, Login: "alice", Password: StringPtr("secret")}

	got := account.Apply(AccountUpdate{Password: Some[*string](nil)})
	assert.Nil(t, got.Password)

	untouched := account.Apply(AccountUpdate{Password: None[*string]()})
	require.NotNil(t, untouched.Password)
	assert.Equal(t, "secret", *untouched.Password)
}

func TestAccountApplyLDAPClearsPassword(t *testing.T) {
	account := Account{Type: AccountTypeLocal, Login: "alice", Password: StringPtr("secret")}

	got := account.Apply(AccountUpdate{
		Type:     Some(AccountTypeLDAP),
		Password: Some(StringPtr("ignored")),
	})

	assert.Equal(t, AccountTypeLDAP, got.Type)
	assert.Nil(t, got.Password)
}

func TestAccountApplyKeepsPasswordWhenTypeNotInUpdate(t *testing.T) {
	account := Account{Type: AccountTypeLDAP, Login: "alice"}

	got := account.Apply(AccountUpdate{Password: Some(StringPtr("kept"))})

	require.NotNil(t, got.Password)
	assert.Equal(t, "kept", *got.Password)
}

func TestAccountCloneSharesNoMemory(t *testing.T) {
	account := Account{Password: StringPtr("secret"), Tags: []Tag{{Text: "a"}}}

	clone := account.Clone()
	*clone.Password = "changed"
	clone.Tags[0].Text = "changed"

	assert.Equal(t, "secret", *account.Password)
	assert.Equal(t, "a", account.Tags[0].Text)
}

func TestNewAccountDefaults(t *testing.T) {
	account := NewAccount("acc-1")

	assert.Equal(t, AccountID("acc-1"), account.ID)
	assert.Equal(t, AccountTypeLocal, account.Type)
	assert.Empty(t, account.Login)
	require.NotNil(t, account.Password)
	assert.Empty(t, *account.Password)
	assert.NotNil(t, account.Tags)
	assert.Empty(t, account.Tags)
	assert.True(t, NewAccount("x").HasPassword())
	assert.True(t, AccountUpdate{}.IsEmpty())
}
