package signatures

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"agency_crm/internal/domain/entities"
	"agency_crm/internal/usecase/interfaces"
)

var ErrMissingESignToken = errors.New("missing ESIGN_API_TOKEN")
var ErrESignGatewayNotConfigured = errors.New("e-signature gateway not configured")

const defaultESignBaseURL = "https://esignatures.com/api"

// ESignaturesGateway sends compiled contract documents to the eSignatures
// REST API and polls document status. Mock mode fabricates provider
// responses so the signature flow works without credentials.

type ESignaturesGateway struct {
	httpClient *http.Client
	baseURL    string
	token      string
	mockMode   bool
}

var _ interfaces.ISignatureGateway = (*ESignaturesGateway)(nil)

func NewESignaturesGateway(token string) (*ESignaturesGateway, error) {
	if isSignatureGatewayMockEnabled() {
		log.Printf("[signature][gateway] mock mode enabled")
		return &ESignaturesGateway{mockMode: true}, nil
	}

	if token == "" {
		log.Printf("[signature][gateway] missing ESIGN_API_TOKEN")
		return nil, ErrMissingESignToken
	}

	baseURL := strings.TrimRight(os.Getenv("ESIGN_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = defaultESignBaseURL
	}
	log.Printf("[signature][gateway] eSignatures client initialized base_url=%s", baseURL)

	return &ESignaturesGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
	}, nil
}

type sendDocumentRequest struct {
	Title       string            `json:"title"`
	ContentHTML string            `json:"content_html"`
	ExternalID  string            `json:"external_id,omitempty"`
	WebhookURL  string            `json:"webhook_url,omitempty"`
	Signers     []entities.Signer `json:"signers"`
}

type sendDocumentResponse struct {
	DocumentID string `json:"document_id"`
	SignURL    string `json:"sign_url"`
	Status     string `json:"status"`
}

type documentStatusResponse struct {
	DocumentID string `json:"document_id"`
	Status     string `json:"status"`
}

func (g *ESignaturesGateway) Send(ctx context.Context, doc interfaces.SignatureDocument) (interfaces.SignatureSendResult, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[signature][gateway] mock send success document_id=%s title=%q", id, doc.Title)
		return interfaces.SignatureSendResult{
			DocumentID: id,
			SignURL:    "https://esignatures.example/sign/" + id,
		}, nil
	}
	if g == nil || g.httpClient == nil {
		return interfaces.SignatureSendResult{}, ErrESignGatewayNotConfigured
	}
	log.Printf("[signature][gateway] send start external_id=%s signers=%d content_len=%d", doc.ExternalReferenceID, len(doc.Signers), len(doc.HTMLContent))

	body, err := json.Marshal(sendDocumentRequest{
		Title:       doc.Title,
		ContentHTML: doc.HTMLContent,
		ExternalID:  doc.ExternalReferenceID,
		WebhookURL:  doc.WebhookURL,
		Signers:     doc.Signers,
	})
	if err != nil {
		return interfaces.SignatureSendResult{}, err
	}

	var out sendDocumentResponse
	if err := g.do(ctx, http.MethodPost, "/contracts", body, &out); err != nil {
		log.Printf("[signature][gateway] send failed external_id=%s err=%v", doc.ExternalReferenceID, err)
		return interfaces.SignatureSendResult{}, err
	}
	log.Printf("[signature][gateway] send success external_id=%s document_id=%s", doc.ExternalReferenceID, out.DocumentID)

	return interfaces.SignatureSendResult{DocumentID: out.DocumentID, SignURL: out.SignURL}, nil
}

func (g *ESignaturesGateway) GetStatus(ctx context.Context, documentID string) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[signature][gateway] mock status document_id=%s status=pending", documentID)
		return "pending", nil
	}
	if g == nil || g.httpClient == nil {
		return "", ErrESignGatewayNotConfigured
	}

	var out documentStatusResponse
	if err := g.do(ctx, http.MethodGet, "/contracts/"+documentID, nil, &out); err != nil {
		log.Printf("[signature][gateway] status failed document_id=%s err=%v", documentID, err)
		return "", err
	}
	log.Printf("[signature][gateway] status success document_id=%s status=%s", documentID, out.Status)
	return out.Status, nil
}

func (g *ESignaturesGateway) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("esignatures api %s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("esignatures api %s %s: decoding response: %w", method, path, err)
		}
	}
	return nil
}

func isSignatureGatewayMockEnabled() bool {
	for _, key := range []string{"SIGNATURE_GATEWAY_MOCK", "ESIGN_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
