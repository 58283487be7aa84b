package bootstrap_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
)

type executorMock struct {
	mock.Mock
}

func (m *executorMock) Run(ctx context.Context, env []string, name string, args ...string) (bootstrap.ExitStatus, error) {
	called := m.Called(ctx, env, name, args)

	return called.Get(0).(bootstrap.ExitStatus), called.Error(1)
}

func (m *executorMock) Output(ctx context.Context, name string, args ...string) (string, bootstrap.ExitStatus, error) {
	called := m.Called(ctx, name, args)

	return called.String(0), called.Get(1).(bootstrap.ExitStatus), called.Error(2)
}

type openerMock struct {
	mock.Mock
}

func (m *openerMock) Open(url string) error {
	return m.Called(url).Error(0)
}
