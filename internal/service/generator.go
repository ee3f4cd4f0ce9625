package service

import (
	"crypto/rand"

	"github.com/avc-dev/linkshortener/internal/model"
)

const (
	CodeLength = 9
	// 64 символа, поэтому каждый случайный байт даёт символ по младшим 6 битам без смещения
	AllowedChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_-"
)

//go:generate mockery --name Generator --output ../mocks --outpkg mocks --with-expecter

// Generator источник коротких кодов
type Generator interface {
	GenerateCode() model.Code
}

// CodeGenerator генерирует случайные коды из URL-безопасного алфавита
type CodeGenerator struct{}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// GenerateCode генерирует случайный код. Уникальность не гарантируется,
// коллизии отсекает уникальный индекс хранилища.
func (g *CodeGenerator) GenerateCode() model.Code {
	buf := make([]byte, CodeLength)
	// crypto/rand.Read не возвращает ошибку начиная с Go 1.24
	_, _ = rand.Read(buf)

	for i, b := range buf {
		buf[i] = AllowedChars[b&63]
	}

	return model.Code(buf)
}
