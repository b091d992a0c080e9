package model

import "time"

type Code string

func (c Code) String() string {
	return string(c)
}

type URL string

func (U URL) String() string {
	return string(U)
}

// Owner представляет идентичность владельца ссылки, полученную от auth-слоя
type Owner struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Link представляет полную запись короткой ссылки владельца.
// Все поля кроме ClickCount неизменяемы после создания.
type Link struct {
	ID          string    `json:"id"`
	OriginalURL URL       `json:"original_url"`
	ShortCode   Code      `json:"short_code"`
	CustomAlias Code      `json:"custom_alias,omitempty"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     string    `json:"owner_id"`
	OwnerEmail  string    `json:"owner_email"`
}

// Resolution представляет минимальную публичную запись для резолва кода.
// OwnerID - не владеющая ссылка, используется только для поиска Link при учёте кликов
type Resolution struct {
	OriginalURL URL       `json:"original_url"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserLinkResponse представляет элемент ответа для списка ссылок пользователя
type UserLinkResponse struct {
	ShortURL    string    `json:"short_url"`
	OriginalURL string    `json:"original_url"`
	ShortCode   string    `json:"short_code"`
	CustomAlias string    `json:"custom_alias,omitempty"`
	ClickCount  int64     `json:"click_count"`
	CreatedAt   time.Time `json:"created_at"`
}
