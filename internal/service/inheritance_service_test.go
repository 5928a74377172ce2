package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"wallet-governance/internal/adapter/storage/memory"
	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/internal/core/ports/mocks"
	"wallet-governance/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type inheritanceTestDeps struct {
	svc      *InheritanceServiceImpl
	planRepo *mocks.MockInheritancePlanRepository
	dummyTx  *mocks.MockDummyTransactionService
	ctrl     *gomock.Controller
}

func setupInheritanceService(t *testing.T) *inheritanceTestDeps {
	ctrl := gomock.NewController(t)
	d := &inheritanceTestDeps{
		planRepo: mocks.NewMockInheritancePlanRepository(ctrl),
		dummyTx:  mocks.NewMockDummyTransactionService(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewInheritanceService(d.planRepo, d.dummyTx, zerolog.Nop())
	d.svc.now = func() time.Time { return fixedNow }
	return d
}

func testTerms() domain.InheritanceTerms {
	return domain.InheritanceTerms{
		Draft: domain.DraftWallet{
			Config:     domain.GroupWalletConfig{RequiredSignatures: 2, TotalKeys: 3},
			WalletType: "MULTI_SIG",
		},
		BufferInterval:      domain.BufferDaily,
		BufferIntervalCount: 7,
	}
}

func activePlan(activation time.Time) *domain.InheritancePlan {
	return &domain.InheritancePlan{
		WalletID:             "wallet-1",
		Terms:                testTerms(),
		ActivationTimeMillis: activation.UnixMilli(),
		Active:               true,
	}
}

func executedTx(t *testing.T, txType domain.DummyTransactionType, terms domain.InheritanceTerms) *domain.DummyTransaction {
	t.Helper()
	payload, err := json.Marshal(terms)
	require.NoError(t, err)
	tx, err := domain.NewDummyTransaction(testWallet(1, 2), txType, string(payload), domain.Signature{MemberID: "alice"}, fixedNow)
	require.NoError(t, err)
	_, err = tx.ConfirmExecuted(fixedNow)
	require.NoError(t, err)
	return tx
}

func TestInheritanceService_CreatePlan_Proposes(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(nil, nil)
	d.dummyTx.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateDummyTransactionRequest) (*domain.DummyTransaction, error) {
			assert.Equal(t, domain.DummyTxCreateInheritance, req.Type)
			assert.Equal(t, "alice", req.MemberID)
			var terms domain.InheritanceTerms
			require.NoError(t, json.Unmarshal([]byte(req.Payload), &terms))
			assert.Equal(t, 7, terms.BufferIntervalCount)
			return &domain.DummyTransaction{Type: req.Type}, nil
		})

	tx, err := d.svc.CreatePlan(ctx, "wallet-1", "alice", testTerms())
	require.NoError(t, err)
	assert.Equal(t, domain.DummyTxCreateInheritance, tx.Type)
}

func TestInheritanceService_CreatePlan_AlreadyActive(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(activePlan(fixedNow), nil)

	_, err := d.svc.CreatePlan(ctx, "wallet-1", "alice", testTerms())
	assert.ErrorIs(t, err, apperror.ErrPlanAlreadyActive())
}

func TestInheritanceService_CreatePlan_InvalidTerms(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()

	terms := testTerms()
	terms.BufferInterval = "YEARLY"

	_, err := d.svc.CreatePlan(context.Background(), "wallet-1", "alice", terms)
	assert.Equal(t, "GOV_012", apperror.CodeOf(err))
}

func TestInheritanceService_UpdateAndCancel_NeedActivePlan(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(nil, nil).Times(2)

	_, err := d.svc.UpdatePlan(ctx, "wallet-1", "alice", testTerms())
	assert.ErrorIs(t, err, apperror.ErrNoPlanFound())

	_, err = d.svc.CancelPlan(ctx, "wallet-1", "alice")
	assert.ErrorIs(t, err, apperror.ErrNoPlanFound())
}

func TestInheritanceService_OnExecuted_CreateActivatesAtExecution(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := executedTx(t, domain.DummyTxCreateInheritance, testTerms())

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(nil, nil)
	d.planRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.InheritancePlan) error {
		assert.True(t, p.Active)
		assert.Equal(t, fixedNow.UnixMilli(), p.ActivationTimeMillis)
		assert.Equal(t, tx.ID, p.DummyTransactionID)
		assert.Equal(t, domain.BufferDaily, p.Terms.BufferInterval)
		return nil
	})

	require.NoError(t, d.svc.OnDummyTransactionExecuted(ctx, tx))
}

func TestInheritanceService_OnExecuted_ExplicitActivation(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	terms := testTerms()
	terms.ActivationTimeMillis = fixedNow.Add(-time.Hour).UnixMilli()
	tx := executedTx(t, domain.DummyTxCreateInheritance, terms)

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(nil, nil)
	d.planRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.InheritancePlan) error {
		assert.Equal(t, terms.ActivationTimeMillis, p.ActivationTimeMillis)
		return nil
	})

	require.NoError(t, d.svc.OnDummyTransactionExecuted(ctx, tx))
}

func TestInheritanceService_OnExecuted_UpdateKeepsActivation(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	activation := fixedNow.Add(-72 * time.Hour)
	terms := testTerms()
	terms.BufferIntervalCount = 10
	tx := executedTx(t, domain.DummyTxUpdateInheritance, terms)

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(activePlan(activation), nil)
	d.planRepo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.InheritancePlan) error {
		assert.Equal(t, activation.UnixMilli(), p.ActivationTimeMillis)
		assert.Equal(t, 10, p.Terms.BufferIntervalCount)
		return nil
	})

	require.NoError(t, d.svc.OnDummyTransactionExecuted(ctx, tx))
}

func TestInheritanceService_OnExecuted_BadPayload(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := executedTx(t, domain.DummyTxCreateInheritance, testTerms())
	tx.Payload = "not json"

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(nil, nil)

	err := d.svc.OnDummyTransactionExecuted(ctx, tx)
	assert.Equal(t, "GOV_012", apperror.CodeOf(err))
}

func TestInheritanceService_OnExecuted_SameProposalTwice(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := executedTx(t, domain.DummyTxCreateInheritance, testTerms())

	plan := activePlan(fixedNow.Add(-48 * time.Hour))
	plan.DummyTransactionID = tx.ID
	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(plan, nil)

	require.NoError(t, d.svc.OnDummyTransactionExecuted(ctx, tx))
	assert.Equal(t, fixedNow.Add(-48*time.Hour).UnixMilli(), plan.ActivationTimeMillis)
}

type inheritanceFlow struct {
	svc     *InheritanceServiceImpl
	dummyTx *DummyTransactionServiceImpl
}

// newInheritanceFlow wires the real proposal engine over in-memory storage for a
// 2-of-2 wallet held by alice and bob.
func newInheritanceFlow(t *testing.T) *inheritanceFlow {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	wallets := memory.NewWalletRepo()
	require.NoError(t, wallets.Create(ctx, testWallet(2, 2), []domain.Member{
		{UserID: "alice", Role: domain.RoleMaster, XFPs: []string{"aaaa0001"}},
		{UserID: "bob", Role: domain.RoleKeyholder, XFPs: []string{"bbbb0002"}},
	}))

	dummyTx := NewDummyTransactionService(memory.NewDummyTransactionRepo(), wallets, mocks.NewMockSigningLayer(ctrl), nil, zerolog.Nop())
	svc := NewInheritanceService(memory.NewInheritancePlanRepo(), dummyTx, zerolog.Nop())
	dummyTx.RegisterHandler(svc)
	return &inheritanceFlow{svc: svc, dummyTx: dummyTx}
}

// execute counter-signs tx as bob and confirms it.
func (f *inheritanceFlow) execute(t *testing.T, tx *domain.DummyTransaction) {
	t.Helper()
	ctx := context.Background()
	signed, err := f.dummyTx.Sign(ctx, ports.SignDummyTransactionRequest{ID: tx.ID, MemberID: "bob"})
	require.NoError(t, err)
	require.Equal(t, domain.DummyTxReadyToBroadcast, signed.Status)

	got, err := f.dummyTx.ConfirmExecuted(ctx, tx.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DummyTxExecuted, got.Status)
}

func TestInheritanceService_UpdateExecutedAfterCancelIsIgnored(t *testing.T) {
	f := newInheritanceFlow(t)
	ctx := context.Background()

	create, err := f.svc.CreatePlan(ctx, "wallet-1", "alice", testTerms())
	require.NoError(t, err)
	f.execute(t, create)

	terms := testTerms()
	terms.BufferIntervalCount = 1
	update, err := f.svc.UpdatePlan(ctx, "wallet-1", "alice", terms)
	require.NoError(t, err)
	cancel, err := f.svc.CancelPlan(ctx, "wallet-1", "alice")
	require.NoError(t, err)

	f.execute(t, cancel)
	f.execute(t, update)

	plan, err := f.svc.GetPlan(ctx, "wallet-1")
	require.NoError(t, err)
	assert.False(t, plan.Active)
	assert.Equal(t, cancel.ID, plan.DummyTransactionID)
	assert.Equal(t, 7, plan.Terms.BufferIntervalCount)

	_, err = f.svc.CanClaim(ctx, "wallet-1", time.Now().Add(365*24*time.Hour))
	assert.ErrorIs(t, err, apperror.ErrNoPlanFound())
}

func TestInheritanceService_SecondCreateKeepsRunningBuffer(t *testing.T) {
	f := newInheritanceFlow(t)
	ctx := context.Background()

	first, err := f.svc.CreatePlan(ctx, "wallet-1", "alice", testTerms())
	require.NoError(t, err)
	terms := testTerms()
	terms.BufferIntervalCount = 30
	second, err := f.svc.CreatePlan(ctx, "wallet-1", "bob", terms)
	require.NoError(t, err)

	f.execute(t, first)
	before, err := f.svc.GetPlan(ctx, "wallet-1")
	require.NoError(t, err)

	// bob proposed the second one, so alice counter-signs it
	_, err = f.dummyTx.Sign(ctx, ports.SignDummyTransactionRequest{ID: second.ID, MemberID: "alice"})
	require.NoError(t, err)
	got, err := f.dummyTx.ConfirmExecuted(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DummyTxExecuted, got.Status)

	after, err := f.svc.GetPlan(ctx, "wallet-1")
	require.NoError(t, err)
	assert.True(t, after.Active)
	assert.Equal(t, first.ID, after.DummyTransactionID)
	assert.Equal(t, before.ActivationTimeMillis, after.ActivationTimeMillis)
	assert.Equal(t, 7, after.Terms.BufferIntervalCount)
}

// A cancel that executes while a claim waits on the buffer leaves no plan to claim.
func TestInheritanceService_CancelExecutedDuringBuffer(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	plan := activePlan(fixedNow.Add(-24 * time.Hour))
	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(plan, nil).AnyTimes()
	d.planRepo.EXPECT().Save(ctx, plan).Return(nil)

	_, err := d.svc.CanClaim(ctx, "wallet-1", fixedNow)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GOV_004", appErr.Code)
	cd, ok := appErr.Data.(domain.BufferPeriodCountdown)
	require.True(t, ok)
	assert.Equal(t, 6, cd.RemainingCount)

	tx := executedTx(t, domain.DummyTxCancelInheritance, plan.Terms)
	require.NoError(t, d.svc.OnDummyTransactionExecuted(ctx, tx))

	_, err = d.svc.CanClaim(ctx, "wallet-1", fixedNow)
	assert.ErrorIs(t, err, apperror.ErrNoPlanFound())
}

func TestInheritanceService_CanClaim_BufferElapsed(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	activation := fixedNow.Add(-7 * 24 * time.Hour)
	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(activePlan(activation), nil)

	ok, err := d.svc.CanClaim(ctx, "wallet-1", fixedNow)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInheritanceService_GetCountdown(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(activePlan(fixedNow.Add(-49*time.Hour)), nil)

	cd, err := d.svc.GetCountdown(ctx, "wallet-1", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 5, cd.RemainingCount)
	assert.Equal(t, "5 days", cd.RemainingDisplayName)
}

func TestInheritanceService_Deactivate(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	plan := activePlan(fixedNow)
	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(plan, nil)
	d.planRepo.EXPECT().Save(ctx, plan).Return(nil)

	require.NoError(t, d.svc.Deactivate(ctx, "wallet-1"))
	assert.False(t, plan.Active)
}

func TestInheritanceService_RepoError(t *testing.T) {
	d := setupInheritanceService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.planRepo.EXPECT().Get(ctx, "wallet-1").Return(nil, errors.New("timeout"))

	_, err := d.svc.GetPlan(ctx, "wallet-1")
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))
}
