package config

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Settings collects the environment-sourced configuration the server and
// services consume. Load reads it once at startup; nothing else touches
// os.Environ directly.
type Settings struct {
	Port         string
	DatabasePath string
	SecretKey    string

	AdminUser         string
	AdminPasswordHash string

	MailServer        string
	MailPort          int
	MailUsername      string
	MailPassword      string
	MailDefaultSender string

	GitHubUsername string
	ResumePath     string

	AcceptedOrigins []string
	CookieSecure    bool
}

// Load builds Settings from the environment. A plaintext ADMIN_PASS is
// hashed once here so older env files keep working; the plaintext never
// leaves this function.
func Load() (Settings, error) {
	c := New()

	s := Settings{
		Port:              GetString(c, "PORT", "8080"),
		DatabasePath:      GetString(c, "DATABASE_PATH", "portfolio.db"),
		SecretKey:         GetString(c, "SECRET_KEY", ""),
		AdminUser:         GetString(c, "ADMIN_USER", "admin"),
		AdminPasswordHash: GetString(c, "ADMIN_PASSWORD_HASH", ""),
		MailServer:        GetString(c, "MAIL_SERVER", "smtp.gmail.com"),
		MailPort:          GetInt(c, "MAIL_PORT", 587),
		MailUsername:      GetString(c, "MAIL_USERNAME", ""),
		MailPassword:      GetString(c, "MAIL_PASSWORD", ""),
		GitHubUsername:    GetString(c, "GITHUB_USERNAME", "vishaldeshmukh2k6"),
		ResumePath:        GetString(c, "RESUME_PATH", "static/resume.pdf"),
		CookieSecure:      GetBool(c, "COOKIE_SECURE", true),
	}
	s.MailDefaultSender = GetString(c, "MAIL_DEFAULT_SENDER", s.MailUsername)

	s.AcceptedOrigins = splitList(GetString(c, "ACCEPTED_ORIGINS", "*"))

	if s.SecretKey == "" {
		return Settings{}, errors.New("SECRET_KEY is required")
	}

	if s.AdminPasswordHash == "" {
		plain := GetString(c, "ADMIN_PASS", "")
		if plain == "" {
			return Settings{}, errors.New("either ADMIN_PASSWORD_HASH or ADMIN_PASS is required")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return Settings{}, err
		}
		s.AdminPasswordHash = string(hash)
	}

	return s, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
