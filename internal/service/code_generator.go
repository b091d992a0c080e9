package service

import (
	"fmt"
	"regexp"

	"github.com/avc-dev/shortlink/internal/model"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const CodeLength = 8

// Пользовательский алиас: только строчные латинские буквы, цифры и дефисы
var aliasPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// CodeGenerator генерирует случайные короткие коды.
// Генерация не имеет побочных эффектов, вызовы независимы между собой.
type CodeGenerator struct {
	length int
}

// NewCodeGenerator создает новый генератор кодов заданной длины
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = CodeLength
	}

	return &CodeGenerator{length: length}
}

// GenerateCode генерирует случайный URL-safe код фиксированной длины
// из алфавита A-Za-z0-9_- (алфавит nanoid)
func (g *CodeGenerator) GenerateCode() (model.Code, error) {
	code, err := gonanoid.New(g.length)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	return model.Code(code), nil
}

// ValidateAlias проверяет пользовательский алиас.
// Валидация выполняется в ядре независимо от фильтрации на форме:
// входу вызывающего доверять нельзя.
func ValidateAlias(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return fmt.Errorf("alias %q: %w", alias, ErrInvalidAlias)
	}

	return nil
}
