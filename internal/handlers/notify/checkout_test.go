package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawhaven_back_end/internal/models"
)

type sentMail struct {
	From    string
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	fail bool
}

func (f *fakeMailer) Send(from, to, subject, htmlBody string) error {
	if f.fail {
		return errors.New("relais SMTP injoignable")
	}
	f.sent = append(f.sent, sentMail{From: from, To: to, Subject: subject, Body: htmlBody})
	return nil
}

type fakeCartClearer struct {
	cleared []string
	fail    bool
}

func (f *fakeCartClearer) DeleteAll(_ context.Context, userID string) error {
	if f.fail {
		return errors.New("store indisponible")
	}
	f.cleared = append(f.cleared, userID)
	return nil
}

func setMailEnv(t *testing.T) {
	t.Helper()
	t.Setenv("EMAIL_USER", "boutique@pawhaven.test")
	t.Setenv("EMAIL_PASS", "motdepasse")
	t.Setenv("OWNER_EMAIL", "gerant@pawhaven.test")
}

func newOrderRouter(n *Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/functions/send-order-email", n.SendOrderEmail)
	r.OPTIONS("/functions/send-order-email", Preflight)
	return r
}

func postOrder(r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/functions/send-order-email", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orderBody() map[string]interface{} {
	return map[string]interface{}{
		"cartItems": []models.CartItem{
			{
				ItemID:   "row-1",
				UserID:   "user-42",
				Product:  models.CartProduct{ID: "prod-1", Name: "Croquettes saumon 2kg", Price: 24.90},
				Quantity: 2,
			},
			{
				ItemID:   "row-2",
				UserID:   "user-42",
				Product:  models.CartProduct{ID: "prod-2", Name: "Laisse réglable", Price: 12.50},
				Quantity: 1,
			},
		},
		"userEmail": "client@example.com",
		"userProfile": models.UserProfile{
			FullName: "Claire Dupont",
			Phone:    "0470 12 34 56",
			Address:  "12 rue des Tilleuls",
			City:     "Namur",
			State:    "Wallonie",
			ZipCode:  "5000",
		},
	}
}

func TestSendOrderEmailSuccess(t *testing.T) {
	setMailEnv(t)
	mailer := &fakeMailer{}
	carts := &fakeCartClearer{}
	r := newOrderRouter(New(mailer, carts))

	w := postOrder(r, orderBody())

	assert.Equal(t, http.StatusOK, w.Code)

	// Exactement un e-mail, du compte boutique vers le gérant
	require.Len(t, mailer.sent, 1)
	mail := mailer.sent[0]
	assert.Equal(t, "boutique@pawhaven.test", mail.From)
	assert.Equal(t, "gerant@pawhaven.test", mail.To)
	assert.Equal(t, "New Order Received", mail.Subject)

	// Total = 2×24.90 + 12.50 = 62.30
	assert.Contains(t, mail.Body, "62.30")
	assert.Contains(t, mail.Body, "Croquettes saumon 2kg")
	assert.Contains(t, mail.Body, "Claire Dupont")

	// Purge du panier filtrée sur l'utilisateur de la commande
	assert.Equal(t, []string{"user-42"}, carts.cleared)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order processed successfully", resp["message"])
}

func TestSendOrderEmailEmptyCartIsRejected(t *testing.T) {
	setMailEnv(t)
	mailer := &fakeMailer{}
	carts := &fakeCartClearer{}
	r := newOrderRouter(New(mailer, carts))

	body := orderBody()
	body["cartItems"] = []models.CartItem{}
	w := postOrder(r, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent, "aucun e-mail ne doit partir pour un panier vide")
	assert.Empty(t, carts.cleared)
}

func TestSendOrderEmailMissingCartItemsIsRejected(t *testing.T) {
	setMailEnv(t)
	mailer := &fakeMailer{}
	r := newOrderRouter(New(mailer, &fakeCartClearer{}))

	w := postOrder(r, map[string]interface{}{"userEmail": "client@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestSendOrderEmailMissingUserIDIsRejected(t *testing.T) {
	setMailEnv(t)
	mailer := &fakeMailer{}
	r := newOrderRouter(New(mailer, &fakeCartClearer{}))

	body := orderBody()
	body["cartItems"] = []models.CartItem{
		{Product: models.CartProduct{ID: "prod-1", Name: "Croquettes", Price: 10}, Quantity: 1},
	}
	w := postOrder(r, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestSendOrderEmailMissingConfigIs500(t *testing.T) {
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")
	t.Setenv("OWNER_EMAIL", "")
	mailer := &fakeMailer{}
	carts := &fakeCartClearer{}
	r := newOrderRouter(New(mailer, carts))

	w := postOrder(r, orderBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, mailer.sent, "aucune tentative d'envoi sans configuration")
	assert.Empty(t, carts.cleared)
}

func TestSendOrderEmailRelayFailureIs500(t *testing.T) {
	setMailEnv(t)
	mailer := &fakeMailer{fail: true}
	carts := &fakeCartClearer{}
	r := newOrderRouter(New(mailer, carts))

	w := postOrder(r, orderBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, carts.cleared, "pas de purge si l'e-mail n'est pas parti")
}

func TestSendOrderEmailDeleteFailureIs500AfterSend(t *testing.T) {
	setMailEnv(t)
	mailer := &fakeMailer{}
	carts := &fakeCartClearer{fail: true}
	r := newOrderRouter(New(mailer, carts))

	w := postOrder(r, orderBody())

	// L'e-mail est déjà parti : un retry du client en renverra un second
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, mailer.sent, 1)
}

func TestSendOrderEmailFallsBackToNotProvided(t *testing.T) {
	setMailEnv(t)
	mailer := &fakeMailer{}
	r := newOrderRouter(New(mailer, &fakeCartClearer{}))

	body := orderBody()
	body["userProfile"] = models.UserProfile{}
	w := postOrder(r, body)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0].Body, "Not provided")
}

func TestOrderPreflightReturnsEmptyOK(t *testing.T) {
	r := newOrderRouter(New(&fakeMailer{}, &fakeCartClearer{}))

	req := httptest.NewRequest(http.MethodOptions, "/functions/send-order-email", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOrderResponsesCarryCORSHeaders(t *testing.T) {
	setMailEnv(t)
	r := newOrderRouter(New(&fakeMailer{}, &fakeCartClearer{}))

	w := postOrder(r, orderBody())

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "authorization")
}
