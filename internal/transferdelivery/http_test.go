package transferdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/go-petr/pet-fx/internal/domain"
	"github.com/go-petr/pet-fx/internal/test"
	"github.com/go-petr/pet-fx/pkg/errorspkg"
	"github.com/go-petr/pet-fx/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type transferData struct {
	Transfer domain.Transfer `json:"transfer"`
}

func TestCreate(t *testing.T) {
	transfer := test.RandomTransfer()
	arg := test.RandomCreateTransferParams(transfer.QuoteID)

	testCases := []struct {
		name           string
		requestBody    any
		buildStubs     func(transferService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: arg,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).Times(1).Return(transfer, nil)
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:        "MalformedQuoteID",
			requestBody: gin.H{"quote_id": "abc"},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "NumericAccountNumber",
			requestBody: gin.H{"quote_id": transfer.QuoteID, "recipient": gin.H{"account_number": 12345}},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "MissingQuoteID",
			requestBody: gin.H{},
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.CreateTransferParams{})).
					Times(1).
					Return(domain.Transfer{}, domain.ErrQuoteIDRequired)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrQuoteIDRequired.Error(),
		},
		{
			name:        "UnknownQuote",
			requestBody: arg,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).Times(1).
					Return(domain.Transfer{}, domain.ErrQuoteReferenceNotFound)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrQuoteReferenceNotFound.Error(),
		},
		{
			name:        "InvalidBankCode",
			requestBody: arg,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).Times(1).
					Return(domain.Transfer{}, domain.ErrInvalidBankCode)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidBankCode.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: arg,
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).Times(1).
					Return(domain.Transfer{}, domain.ErrTransferAlreadyExists)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transferService := NewMockService(ctrl)
			tc.buildStubs(transferService)

			server := gin.New()
			server.POST("/transfers", NewHandler(transferService).Create)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &transferData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusCreated {
				if tc.wantError != "" && res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				if res.Error == "" {
					t.Errorf("resp.Error is empty")
				}

				return
			}

			if got, want := recorder.Header().Get("Location"), "/transfers/"+transfer.ID.String(); got != want {
				t.Errorf("Location: got %q, want %q", got, want)
			}

			got := res.Data.(*transferData)
			if diff := cmp.Diff(transfer, got.Transfer); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	transfer := test.RandomTransfer()

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(transferService *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			id:   transfer.ID.String(),
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Get(gomock.Any(), gomock.Eq(transfer.ID)).Times(1).Return(transfer, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MalformedID",
			id:   "42",
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "ID must be a valid UUID",
		},
		{
			name: "NotFound",
			id:   uuid.NewString(),
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.Transfer{}, domain.ErrTransferNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrTransferNotFound.Error(),
		},
		{
			name: "InternalServerError",
			id:   uuid.NewString(),
			buildStubs: func(transferService *MockService) {
				transferService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(1).
					Return(domain.Transfer{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			transferService := NewMockService(ctrl)
			tc.buildStubs(transferService)

			server := gin.New()
			server.GET("/transfers/:id", NewHandler(transferService).Get)

			req, err := http.NewRequest(http.MethodGet, "/transfers/"+tc.id, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			res := web.Response{Data: &transferData{}}
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error != tc.wantError {
					t.Errorf(`resp.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			got := res.Data.(*transferData)
			if diff := cmp.Diff(transfer, got.Transfer); diff != "" {
				t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
