package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"textsum/internal/account"
)

// ErrQuit is returned when the user leaves the sign-in screen.
var ErrQuit = errors.New("quit")

const (
	actionLogin  = "login"
	actionSignup = "signup"
	actionQuit   = "quit"
)

// Authenticator is the user directory used by the sign-in screen.
type Authenticator interface {
	Login(email, password string) (account.User, error)
	Signup(req account.SignupRequest) (account.User, error)
}

type credentials struct {
	Email    string
	Password string
}

type prompter interface {
	Action(notice string) (string, error)
	Login() (credentials, error)
	Signup() (account.SignupRequest, error)
}

// Authenticate shows the sign-in and sign-up forms until a user signs in or quits.
func Authenticate(dir Authenticator) (account.User, error) {
	return authenticate(dir, huhPrompter{})
}

func authenticate(dir Authenticator, p prompter) (account.User, error) {
	notice := ""
	for {
		action, err := p.Action(notice)
		if err != nil {
			return account.User{}, abort(err)
		}
		switch action {
		case actionLogin:
			creds, err := p.Login()
			if err != nil {
				return account.User{}, abort(err)
			}
			user, err := dir.Login(strings.TrimSpace(creds.Email), creds.Password)
			if err != nil {
				notice = err.Error()
				continue
			}
			return user, nil
		case actionSignup:
			req, err := p.Signup()
			if err != nil {
				return account.User{}, abort(err)
			}
			req.Name = strings.TrimSpace(req.Name)
			req.Email = strings.TrimSpace(req.Email)
			user, err := dir.Signup(req)
			if err != nil {
				notice = err.Error()
				continue
			}
			return user, nil
		default:
			return account.User{}, ErrQuit
		}
	}
}

func abort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrQuit
	}
	return err
}

type huhPrompter struct{}

func (huhPrompter) Action(notice string) (string, error) {
	action := actionLogin
	fields := []huh.Field{}
	if notice != "" {
		fields = append(fields, huh.NewNote().Title(errorStyle.Render(notice)))
	}
	fields = append(fields, huh.NewSelect[string]().
		Title("Text Summarizer").
		Description("Sign in to summarize text").
		Options(
			huh.NewOption("Sign in", actionLogin),
			huh.NewOption("Create an account", actionSignup),
			huh.NewOption("Quit", actionQuit),
		).
		Value(&action))
	err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeCharm()).Run()
	return action, err
}

func (huhPrompter) Login() (credentials, error) {
	var c credentials
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Email").Value(&c.Email).Validate(required("email")),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password).Validate(required("password")),
	)).WithTheme(huh.ThemeCharm())
	return c, form.Run()
}

func (huhPrompter) Signup() (account.SignupRequest, error) {
	var req account.SignupRequest
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Name").Value(&req.Name).Validate(required("name")),
		huh.NewInput().Title("Email").Value(&req.Email).Validate(required("email")),
		huh.NewInput().Title("Password").
			Description("At least 6 characters").
			EchoMode(huh.EchoModePassword).
			Value(&req.Password).
			Validate(validatePassword),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&req.ConfirmPassword),
	)).WithTheme(huh.ThemeCharm())
	return req, form.Run()
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func validatePassword(s string) error {
	if len(s) < account.MinPasswordLength {
		return account.ErrPasswordTooShort
	}
	return nil
}
