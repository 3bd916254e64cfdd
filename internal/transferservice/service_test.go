package transferservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-fx/internal/domain"
	"github.com/go-petr/pet-fx/internal/quoterepo"
	"github.com/go-petr/pet-fx/internal/test"
	"github.com/go-petr/pet-fx/internal/transferrepo"
	"github.com/go-petr/pet-fx/pkg/errorspkg"
)

var testNow = time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	testQuote := test.RandomQuote()

	validArg := func() domain.CreateTransferParams {
		return test.RandomCreateTransferParams(testQuote.ID)
	}

	quoteFound := func(qs *MockQuoteService) {
		qs.EXPECT().Get(gomock.Any(), gomock.Eq(testQuote.ID)).Times(1).Return(testQuote, nil)
	}

	testCases := []struct {
		name          string
		arg           func() domain.CreateTransferParams
		buildStubs    func(repo *MockRepo, qs *MockQuoteService)
		checkResponse func(t *testing.T, arg domain.CreateTransferParams, res domain.Transfer, err error)
	}{
		{
			name: "OK",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient.AccountNumber = " 012345678 "
				arg.Recipient.BankCode = "42"

				return arg
			},
			buildStubs: func(repo *MockRepo, qs *MockQuoteService) {
				quoteFound(qs)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					DoAndReturn(func(_ context.Context, t domain.Transfer) (domain.Transfer, error) {
						return t, nil
					})
			},
			checkResponse: func(t *testing.T, arg domain.CreateTransferParams, res domain.Transfer, err error) {
				require.NoError(t, err)
				require.NotEqual(t, uuid.Nil, res.ID)

				want := domain.Transfer{
					ID:      res.ID,
					Status:  domain.StatusProcessing,
					QuoteID: testQuote.ID,
					Payer:   *arg.Payer,
					Recipient: domain.Recipient{
						Name:          arg.Recipient.Name,
						AccountNumber: 12345678,
						BankCode:      42,
						BankName:      arg.Recipient.BankName,
					},
					EstimatedDeliveryDate: testNow.Add(24 * time.Hour),
					CreatedAt:             testNow,
				}

				if diff := cmp.Diff(want, res); diff != "" {
					t.Errorf("Create() mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "EmptyQuoteID",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.QuoteID = uuid.Nil
				arg.Payer = nil

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrQuoteIDRequired)
				require.ErrorIs(t, err, domain.ErrInvalidRequest)
			},
		},
		{
			name: "UnknownQuote",
			arg:  validArg,
			buildStubs: func(repo *MockRepo, qs *MockQuoteService) {
				qs.EXPECT().Get(gomock.Any(), gomock.Any()).Times(1).Return(domain.Quote{}, domain.ErrQuoteNotFound)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrQuoteReferenceNotFound)
				require.ErrorIs(t, err, domain.ErrInvalidRequest)
			},
		},
		{
			name: "QuoteServiceError",
			arg:  validArg,
			buildStubs: func(repo *MockRepo, qs *MockQuoteService) {
				qs.EXPECT().Get(gomock.Any(), gomock.Any()).Times(1).Return(domain.Quote{}, errorspkg.ErrInternal)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, errorspkg.ErrInternal)
			},
		},
		{
			name: "MissingPayer",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Payer = nil

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrPayerRequired)
			},
		},
		{
			name: "EmptyPayerID",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Payer.ID = uuid.Nil

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrPayerIDRequired)
			},
		},
		{
			name: "BlankPayerName",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Payer.Name = "  "

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrPayerNameRequired)
			},
		},
		{
			name: "BlankTransferReason",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Payer.TransferReason = ""

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrTransferReasonRequired)
			},
		},
		{
			name: "PayerCheckedBeforeRecipient",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Payer.Name = ""
				arg.Recipient = nil

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrPayerNameRequired)
			},
		},
		{
			name: "MissingRecipient",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient = nil

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrRecipientRequired)
			},
		},
		{
			name: "BlankRecipientName",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient.Name = ""

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrRecipientNameRequired)
			},
		},
		{
			name: "NonNumericAccountNumber",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient.AccountNumber = "12AB34"

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAccountNumber)
			},
		},
		{
			name: "EmptyAccountNumber",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient.AccountNumber = ""

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAccountNumber)
			},
		},
		{
			name: "NonNumericBankCode",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient.BankCode = "x1"

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidBankCode)
			},
		},
		{
			name: "AccountNumberCheckedBeforeBankCode",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient.AccountNumber = "abc"
				arg.Recipient.BankCode = "def"

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrInvalidAccountNumber)
			},
		},
		{
			name: "BlankBankName",
			arg: func() domain.CreateTransferParams {
				arg := validArg()
				arg.Recipient.BankName = " "

				return arg
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.ErrorIs(t, err, domain.ErrBankNameRequired)
				require.ErrorIs(t, err, domain.ErrInvalidRequest)
			},
		},
		{
			name: "RepoError",
			arg:  validArg,
			buildStubs: func(repo *MockRepo, qs *MockQuoteService) {
				quoteFound(qs)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.Transfer{}, domain.ErrTransferAlreadyExists)
			},
			checkResponse: func(t *testing.T, _ domain.CreateTransferParams, res domain.Transfer, err error) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrTransferAlreadyExists)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			qs := NewMockQuoteService(ctrl)

			if tc.buildStubs != nil {
				tc.buildStubs(repo, qs)
			} else {
				// Failures past the quote check still resolve the quote first.
				arg := tc.arg()
				if arg.QuoteID != uuid.Nil {
					quoteFound(qs)
				}

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			}

			s := New(repo, qs)
			s.now = func() time.Time { return testNow }

			arg := tc.arg()
			res, err := s.Create(context.Background(), arg)
			tc.checkResponse(t, arg, res, err)
		})
	}
}

func TestGet(t *testing.T) {
	transfer := test.RandomTransfer()

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo)
		want       domain.Transfer
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(transfer.ID)).Times(1).Return(transfer, nil)
			},
			want: transfer,
		},
		{
			name: "NotFound",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(transfer.ID)).Times(1).
					Return(domain.Transfer{}, domain.ErrTransferNotFound)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo, NewMockQuoteService(ctrl))

			got, err := s.Get(context.Background(), transfer.ID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, got)

				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Get() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateWithMemoryRepos(t *testing.T) {
	quotes := quoterepo.NewRepoMemory()
	q, err := quotes.Create(context.Background(), test.RandomQuote())
	require.NoError(t, err)

	s := New(transferrepo.NewRepoMemory(), quotes)

	created, err := s.Create(context.Background(), test.RandomCreateTransferParams(q.ID))
	require.NoError(t, err)
	require.Equal(t, domain.StatusProcessing, created.Status)
	require.Equal(t, created.CreatedAt.Add(DeliveryOffset), created.EstimatedDeliveryDate)

	got, err := s.Get(context.Background(), created.ID)
	require.NoError(t, err)

	if diff := cmp.Diff(created, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = s.Create(context.Background(), test.RandomCreateTransferParams(uuid.New()))
	require.ErrorIs(t, err, domain.ErrQuoteReferenceNotFound)

	_, err = s.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrTransferNotFound)
}
