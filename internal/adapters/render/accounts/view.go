package accounts

import (
	"fmt"
	"strings"

	"github.com/bnema/account-keeper/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ShowPasswords prints stored passwords instead of a mask.
	ShowPasswords bool
}

const passwordMask = "********"

func renderView(accounts []domain.Account, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts stored."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range accounts {
		lines = append(lines, s.section.Render(renderAccount(account, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(account domain.Account, opts RenderOptions, s styles) string {
	parts := []string{
		s.account.Render(accountTitle(account)) + " " + s.badge.Render("["+string(account.Type)+"]"),
		field(s, "login", loginLabel(account.Login)),
		field(s, "password", passwordLabel(account, opts)),
		field(s, "tags", tagsLabel(account.Tags, s)),
	}

	if errs := domain.ValidateAccount(account); errs.HasErrors() {
		for _, name := range errs.Fields() {
			parts = append(parts, s.warning.Render("! "+errs[name]))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderValidation(errs domain.ValidationErrors, s styles) string {
	if !errs.HasErrors() {
		return s.ok.Render("valid")
	}

	lines := []string{s.warning.Render(fmt.Sprintf("invalid: %d field(s)", len(errs)))}
	for _, name := range errs.Fields() {
		lines = append(lines, field(s, name, s.warning.Render(errs[name])))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(s styles, name, value string) string {
	return s.label.Render(name+":") + " " + s.detail.Render(value)
}

func accountTitle(account domain.Account) string {
	if strings.TrimSpace(account.Login) == "" {
		return fmt.Sprintf("(no login) (%s)", account.ID)
	}

	return fmt.Sprintf("%s (%s)", account.Login, account.ID)
}

func loginLabel(login string) string {
	if login == "" {
		return "n/a"
	}

	return login
}

func passwordLabel(account domain.Account, opts RenderOptions) string {
	switch {
	case account.Password == nil:
		return "none"
	case *account.Password == "":
		return "empty"
	case opts.ShowPasswords:
		return *account.Password
	default:
		return passwordMask
	}
}

func tagsLabel(tags []domain.Tag, s styles) string {
	if len(tags) == 0 {
		return "n/a"
	}

	rendered := make([]string, 0, len(tags))
	for _, tag := range tags {
		rendered = append(rendered, s.tag.Render(tag.Text))
	}

	return strings.Join(rendered, domain.TagSeparator+" ")
}
