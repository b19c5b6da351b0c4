package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agency_crm/internal/adapter/http/handlers/mocks"
	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSignatureRouter(h *SignatureHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/signatures", h.SendForSignature)
	r.GET("/v1/signatures", h.GetSignatureStatus)
	r.POST("/v1/signatures/webhook", h.HandleWebhook)
	return r
}

func TestSignatureHandler_SendForSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSignatureHandler(mocks.NewMockISignatureUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing contract id fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewSignatureHandler(mocks.NewMockISignatureUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures", bytes.NewBufferString(`{"signers":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure surfaces as 200 with failure body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().SendContract(gomock.Any(), gomock.Any()).Return(usecase.SendResult{
			Success:   false,
			Message:   "signature provider call failed",
			CanResend: true,
			Error:     "provider 503",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures", bytes.NewBufferString(`{"contractId":"c-1","signers":[{"name":"Jane Doe","email":"jane@acme.com"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["canResend"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid signers map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().SendContract(gomock.Any(), gomock.Any()).Return(usecase.SendResult{}, &usecase.SignerValidationError{
			Invalid: []entities.Signer{{Name: "Bad", Email: "nope"}},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures", bytes.NewBufferString(`{"contractId":"c-1","signers":[{"name":"Bad","email":"nope"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().SendContract(gomock.Any(), usecase.SendContractInput{
			ContractID: "c-1",
			Signers:    []entities.Signer{{Name: "Jane Doe", Email: "jane@acme.com"}},
		}).Return(usecase.SendResult{Success: true, DocumentID: "doc-9", SignURL: "https://sign.example/doc-9", Message: "contract sent for signature"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures", bytes.NewBufferString(`{"contractId":"c-1","signers":[{"name":"Jane Doe","email":"jane@acme.com"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["documentId"] != "doc-9" || body["signUrl"] != "https://sign.example/doc-9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSignatureHandler_GetSignatureStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().GetStatus(gomock.Any(), "c-1").Return(usecase.SignatureStatusView{
			ContractID: "c-1",
			DocumentID: "doc-9",
			Status:     entities.SignatureStatusSent,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/signatures?contractId=c-1", nil)
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "sent" || body["contractId"] != "c-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing contract id maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().GetStatus(gomock.Any(), "").Return(usecase.SignatureStatusView{}, usecase.ErrInvalidContractID)

		req := httptest.NewRequest(http.MethodGet, "/v1/signatures", nil)
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().GetStatus(gomock.Any(), "c-x").Return(usecase.SignatureStatusView{}, usecase.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/signatures?contractId=c-x", nil)
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSignatureHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("signed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().HandleWebhookEvent(gomock.Any(), usecase.WebhookEvent{
			Event:      "document.signed",
			DocumentID: "doc-9",
			ContractID: "c-1",
		}).Return(usecase.SignatureStatusView{ContractID: "c-1", Status: entities.SignatureStatusSigned}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures/webhook", bytes.NewBufferString(`{"event":"document.signed","documentId":"doc-9","contractId":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "signed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown event maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().HandleWebhookEvent(gomock.Any(), gomock.Any()).Return(usecase.SignatureStatusView{}, usecase.ErrUnknownWebhookEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures/webhook", bytes.NewBufferString(`{"event":"document.viewed","contractId":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignatureUseCase(ctrl)
		h := NewSignatureHandler(uc)

		uc.EXPECT().HandleWebhookEvent(gomock.Any(), gomock.Any()).Return(usecase.SignatureStatusView{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/signatures/webhook", bytes.NewBufferString(`{"event":"document.signed","contractId":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newSignatureRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
