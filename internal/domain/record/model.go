package record

import (
	"strings"
	"time"
)

// TimeLayout - формат createdAt в хранилище (ISO-8601, миллисекунды, UTC).
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Credential - сохраненная учетная запись.
type Credential struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     string    `json:"email"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCredential - изменяемые поля записи, передаются при создании и обновлении.
type NewCredential struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	Note     string `json:"note,omitempty"`
}

// Fields возвращает изменяемые поля записи.
func (c Credential) Fields() NewCredential {
	return NewCredential{
		Name:     c.Name,
		Username: c.Username,
		Password: c.Password,
		Email:    c.Email,
		Note:     c.Note,
	}
}

// Validate проверяет обязательные поля.
func (n NewCredential) Validate() error {
	switch {
	case strings.TrimSpace(n.Name) == "":
		return ErrNameRequired
	case strings.TrimSpace(n.Username) == "":
		return ErrUsernameRequired
	case strings.TrimSpace(n.Password) == "":
		return ErrPasswordRequired
	}
	return nil
}

// MatchName сообщает, содержит ли имя подстроку без учета регистра.
func MatchName(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// FormatTime приводит время к формату хранилища.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime разбирает createdAt из хранилища. Принимает любую точность
// долей секунды, как у toISOString и RFC 3339.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
