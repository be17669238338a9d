package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/PS-gitpro/myblog/internal/mailer"
)

// Mailer is a mock of mailer.Mailer.
type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(msg mailer.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}
