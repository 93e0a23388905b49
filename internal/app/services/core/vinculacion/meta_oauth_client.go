package vinculacion

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// metaOAuthClient talks to the Meta Graph API for the WhatsApp Business
// linking wizard: code-for-token exchange and phone number listing.
type metaOAuthClient struct {
	HTTPClient *http.Client
	Meta       config.Meta
}

func NewMetaOAuthClient(metaConfig config.Meta) contracts.MetaOAuthClient {
	return &metaOAuthClient{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Meta:       metaConfig,
	}
}

type metaTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type metaDebugTokenResponse struct {
	Data struct {
		GranularScopes []struct {
			Scope     string   `json:"scope"`
			TargetIDs []string `json:"target_ids"`
		} `json:"granular_scopes"`
	} `json:"data"`
}

type metaPhoneNumbersResponse struct {
	Data []struct {
		ID             string `json:"id"`
		DisplayNumber  string `json:"display_phone_number"`
		CodeVerifyInfo *struct {
			Status string `json:"status"`
		} `json:"code_verification_status,omitempty"`
		VerifiedName string `json:"verified_name"`
		Status       string `json:"status"`
	} `json:"data"`
}

func (c *metaOAuthClient) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	query := url.Values{}
	query.Set("client_id", c.Meta.AppID)
	query.Set("client_secret", c.Meta.AppSecret)
	query.Set("redirect_uri", c.Meta.RedirectURL)
	query.Set("code", code)

	var tokenResponse metaTokenResponse
	endpoint := fmt.Sprintf("%s/oauth/access_token?%s", c.Meta.GraphBaseURL, query.Encode())
	if err := c.getJSON(ctx, endpoint, &tokenResponse); err != nil {
		return "", "", exceptions.ErrWhatsAppExchange(err)
	}
	if tokenResponse.AccessToken == "" {
		return "", "", exceptions.ErrWhatsAppExchange(fmt.Errorf("empty access_token in exchange response"))
	}

	// The WABA granted during the embedded signup flow comes back as the
	// target of the whatsapp_business_management scope.
	debugQuery := url.Values{}
	debugQuery.Set("input_token", tokenResponse.AccessToken)
	debugQuery.Set("access_token", tokenResponse.AccessToken)

	var debugResponse metaDebugTokenResponse
	endpoint = fmt.Sprintf("%s/debug_token?%s", c.Meta.GraphBaseURL, debugQuery.Encode())
	if err := c.getJSON(ctx, endpoint, &debugResponse); err != nil {
		return "", "", exceptions.ErrWhatsAppExchange(err)
	}

	for _, scope := range debugResponse.Data.GranularScopes {
		if scope.Scope == "whatsapp_business_management" && len(scope.TargetIDs) > 0 {
			return tokenResponse.AccessToken, scope.TargetIDs[0], nil
		}
	}
	return "", "", exceptions.ErrWhatsAppExchange(fmt.Errorf("no whatsapp business account granted"))
}

func (c *metaOAuthClient) ListPhoneNumbers(ctx context.Context, accessToken, wabaID string) ([]models.TelefonoWhatsApp, error) {
	query := url.Values{}
	query.Set("access_token", accessToken)

	var phonesResponse metaPhoneNumbersResponse
	endpoint := fmt.Sprintf("%s/%s/phone_numbers?%s", c.Meta.GraphBaseURL, wabaID, query.Encode())
	if err := c.getJSON(ctx, endpoint, &phonesResponse); err != nil {
		return nil, exceptions.ErrWhatsAppPhoneList(err)
	}

	telefonos := make([]models.TelefonoWhatsApp, 0, len(phonesResponse.Data))
	for _, phone := range phonesResponse.Data {
		telefonos = append(telefonos, models.TelefonoWhatsApp{
			PhoneNumberID: phone.ID,
			Numero:        phone.DisplayNumber,
			Verificado:    phone.Status == "CONNECTED",
		})
	}
	return telefonos, nil
}

func (c *metaOAuthClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("meta graph api returned status %d", response.StatusCode)
	}
	return json.NewDecoder(response.Body).Decode(out)
}
