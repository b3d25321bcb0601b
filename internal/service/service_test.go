package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growai/fincoach/internal/cache"
	"github.com/growai/fincoach/internal/generator"
	"github.com/growai/fincoach/internal/integrations/gemini"
	"github.com/growai/fincoach/internal/tax"
	"github.com/growai/fincoach/internal/templates"
)

type stubAdvisor struct {
	reply  string
	err    error
	lastFC gemini.FinancialContext
}

func (a *stubAdvisor) Advise(ctx context.Context, fc gemini.FinancialContext, message string) (string, error) {
	a.lastFC = fc
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// newChatService builds a service whose snapshot reads are satisfied from the
// cache, so no database is involved.
func newChatService(t *testing.T, advisor Advisor, userID int64) *Service {
	t.Helper()

	snapCache, err := cache.NewSnapshotCache()
	require.NoError(t, err)

	gen := generator.New(templates.NewStore())
	snap, err := gen.Generate(templates.YoungProfessional, []string{"HDFC"}, nil)
	require.NoError(t, err)
	snapCache.Set(userID, snap)

	return NewService(nil, gen, snapCache, advisor, nil, testLogger(), nil)
}

func TestChatWithAdvisor(t *testing.T) {
	advisor := &stubAdvisor{reply: "Build your emergency fund first."}
	svc := newChatService(t, advisor, 1)

	reply, err := svc.Chat(context.Background(), 1, "Where do I start?")
	require.NoError(t, err)
	assert.Equal(t, "Build your emergency fund first.", reply)
	assert.Greater(t, advisor.lastFC.MonthlyIncome, 0)
	assert.Contains(t, advisor.lastFC.Debts, "education_loan")
}

func TestChatNilAdvisorFallsBack(t *testing.T) {
	svc := newChatService(t, nil, 2)

	reply, err := svc.Chat(context.Background(), 2, "hello")
	require.NoError(t, err)
	assert.Equal(t, gemini.FallbackReply, reply)
}

func TestChatAdvisorErrorFallsBack(t *testing.T) {
	advisor := &stubAdvisor{err: errors.New("deadline exceeded")}
	svc := newChatService(t, advisor, 3)

	reply, err := svc.Chat(context.Background(), 3, "hello")
	require.NoError(t, err)
	assert.Equal(t, gemini.FallbackReply, reply)
}

func TestEstimateTaxPassthrough(t *testing.T) {
	svc := NewService(nil, nil, nil, nil, nil, testLogger(), nil)

	estimate, err := svc.EstimateTax(1000000, "")
	require.NoError(t, err)
	assert.Equal(t, 60000, estimate.TotalTax)

	_, err = svc.EstimateTax(-1, "")
	assert.ErrorIs(t, err, tax.ErrInvalidIncome)
}
