package idcard_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onemapafrica/member-hub-api/internal/card"
	"github.com/onemapafrica/member-hub-api/internal/idcard"
	"github.com/onemapafrica/member-hub-api/internal/member"
	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/qr"
	"github.com/onemapafrica/member-hub-api/internal/shared/mail"
	"github.com/onemapafrica/member-hub-api/internal/shared/testutil"
	"github.com/onemapafrica/member-hub-api/internal/signature"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testPNG returns a small valid PNG image.
func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 20, G: 83, B: 45, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type testEnv struct {
	db      *gorm.DB
	service *idcard.IDCardService
	sender  *testutil.MockMailSender
}

func setupIDCardEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	cfg := testutil.NewTestConfig()
	signatureService := signature.NewSignatureService(db, cfg, signature.NewSignatureRepository())
	sender := testutil.NewMockMailSender()
	service := idcard.NewIDCardService(db, cfg, member.NewMemberRepository(), card.NewCardRepository(), signatureService, sender)

	return &testEnv{db: db, service: service, sender: sender}
}

func (e *testEnv) seedMember(t *testing.T, photoURL string) *model.Member {
	t.Helper()

	mbr := &model.Member{
		MembershipID: "OMA-000011",
		FirstName:    "Aïcha",
		LastName:     "Koné",
		Email:        "aicha@example.org",
		Phone:        "+225070123456",
		Country:      "Côte d'Ivoire",
		Status:       model.MemberStatusActive,
		Role:         model.RoleExecutive,
		PhotoURL:     photoURL,
	}
	require.NoError(t, e.db.Create(mbr).Error)
	return mbr
}

func (e *testEnv) seedCard(t *testing.T, memberID uint32, active bool) *model.Card {
	t.Helper()

	codec := qr.NewCodec(testutil.NewTestConfig())
	qrDataURI, err := codec.EncodeDataURI("OMA-2026-011")
	require.NoError(t, err)

	crd := &model.Card{
		CardID:     "OMA-2026-011",
		MemberID:   memberID,
		IssueDate:  time.Now().UTC(),
		ExpiryDate: time.Now().UTC().AddDate(1, 0, 0),
		IsActive:   active,
		QRCodeURL:  qrDataURI,
	}
	require.NoError(t, e.db.Create(crd).Error)
	return crd
}

func (e *testEnv) seedSignature(t *testing.T, data []byte) {
	t.Helper()

	asset := &model.Asset{
		ID:          uuid.NewString(),
		ContentType: "image/png",
		Size:        int64(len(data)),
		Data:        data,
	}
	require.NoError(t, e.db.Create(asset).Error)
	require.NoError(t, e.db.Create(&model.Signature{AssetID: asset.ID}).Error)
}

func TestExport_RendersTwoPagePDF(t *testing.T) {
	// Given: A member with a remote photo, an active card and a signature
	env := setupIDCardEnv(t)

	photoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(testPNG(t))
	}))
	t.Cleanup(photoServer.Close)

	mbr := env.seedMember(t, photoServer.URL+"/photo.png")
	env.seedCard(t, mbr.ID, true)
	env.seedSignature(t, testPNG(t))

	// When: Export the card
	doc, err := env.service.Export(context.Background(), mbr.ID)

	// Then: A PDF document comes back, named after the serial
	require.NoError(t, err)
	assert.Equal(t, "OMA-2026-011-id-card.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
	assert.Greater(t, len(doc.Data), 1000)
}

func TestExport_WithoutPhotoOrSignature(t *testing.T) {
	// Given: A member with no photo and no signature configured
	env := setupIDCardEnv(t)
	mbr := env.seedMember(t, "")
	env.seedCard(t, mbr.ID, true)

	// When: Export the card
	doc, err := env.service.Export(context.Background(), mbr.ID)

	// Then: The card renders with placeholders
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
}

func TestExport_InactiveCard_RefusedBeforeAnyWork(t *testing.T) {
	// Given: A revoked card and a photo server that must never be called
	env := setupIDCardEnv(t)

	photoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("photo fetched for an inactive card")
	}))
	t.Cleanup(photoServer.Close)

	mbr := env.seedMember(t, photoServer.URL+"/photo.png")
	env.seedCard(t, mbr.ID, false)

	// When: Export the card
	_, err := env.service.Export(context.Background(), mbr.ID)

	// Then: The inactive guard fires before any fetch
	assert.ErrorIs(t, err, card.ErrCardInactive)
}

func TestExport_PhotoFetchFailure_AbortsRender(t *testing.T) {
	// Given: A photo URL that answers 404
	env := setupIDCardEnv(t)

	photoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(photoServer.Close)

	mbr := env.seedMember(t, photoServer.URL+"/photo.png")
	env.seedCard(t, mbr.ID, true)

	// When: Export the card
	_, err := env.service.Export(context.Background(), mbr.ID)

	// Then: No partial artifact, the render fails as a whole
	assert.ErrorIs(t, err, idcard.ErrRenderFailed)
}

func TestExport_PhotoContentTypeVariants(t *testing.T) {
	tests := []struct {
		name      string
		setHeader func(w http.ResponseWriter)
	}{
		{
			name: "charset parameter on the media type",
			setHeader: func(w http.ResponseWriter) {
				w.Header().Set("Content-Type", "image/png; charset=utf-8")
			},
		},
		{
			name: "no Content-Type header at all",
			setHeader: func(w http.ResponseWriter) {
				w.Header()["Content-Type"] = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: A photo host with a sloppy Content-Type
			env := setupIDCardEnv(t)

			photoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.setHeader(w)
				_, _ = w.Write(testPNG(t))
			}))
			t.Cleanup(photoServer.Close)

			mbr := env.seedMember(t, photoServer.URL+"/photo.png")
			env.seedCard(t, mbr.ID, true)

			// When: Export the card
			doc, err := env.service.Export(context.Background(), mbr.ID)

			// Then: The photo still embeds and the render succeeds
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))
		})
	}
}

func TestExport_UnknownMember(t *testing.T) {
	// Given: An empty database
	env := setupIDCardEnv(t)

	// When: Export for a member that does not exist
	_, err := env.service.Export(context.Background(), 4242)

	// Then: Member not found
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestExport_MemberWithoutCard(t *testing.T) {
	// Given: A member who never had a card issued
	env := setupIDCardEnv(t)
	mbr := env.seedMember(t, "")

	// When: Export
	_, err := env.service.Export(context.Background(), mbr.ID)

	// Then: Card not found
	assert.ErrorIs(t, err, card.ErrCardNotFound)
}

func TestDispatch_DefaultsToConfiguredAddress(t *testing.T) {
	// Given: A renderable card and no explicit recipient
	env := setupIDCardEnv(t)
	mbr := env.seedMember(t, "")
	env.seedCard(t, mbr.ID, true)

	// When: Dispatch without a recipient
	err := env.service.Dispatch(context.Background(), mbr.ID, "")

	// Then: The PDF goes to the configured dispatch address as an attachment
	require.NoError(t, err)
	require.Equal(t, 1, env.sender.SentCount())

	sent := env.sender.Sent[0]
	assert.Equal(t, "cards@onemapafrica.test", sent.ToAddress)
	require.Len(t, sent.Attachments, 1)
	assert.Equal(t, "OMA-2026-011-id-card.pdf", sent.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", sent.Attachments[0].ContentType)
	assert.True(t, bytes.HasPrefix(sent.Attachments[0].Data, []byte("%PDF")))
}

func TestDispatch_ExplicitRecipientWins(t *testing.T) {
	// Given: A renderable card
	env := setupIDCardEnv(t)
	mbr := env.seedMember(t, "")
	env.seedCard(t, mbr.ID, true)

	// When: Dispatch to the member's own email
	err := env.service.Dispatch(context.Background(), mbr.ID, mbr.Email)

	// Then: The explicit recipient is used
	require.NoError(t, err)
	require.Equal(t, 1, env.sender.SentCount())
	assert.Equal(t, mbr.Email, env.sender.Sent[0].ToAddress)
}

func TestDispatch_InactiveCard_Refused(t *testing.T) {
	// Given: A revoked card
	env := setupIDCardEnv(t)
	mbr := env.seedMember(t, "")
	env.seedCard(t, mbr.ID, false)

	// When: Dispatch
	err := env.service.Dispatch(context.Background(), mbr.ID, "")

	// Then: Refused; nothing was sent
	assert.ErrorIs(t, err, card.ErrCardInactive)
	assert.Equal(t, 0, env.sender.SentCount())
}

func TestDispatch_SenderFailure(t *testing.T) {
	// Given: A mail collaborator that fails
	env := setupIDCardEnv(t)
	env.sender.SendFunc = func(ctx context.Context, msg *mail.Message) error {
		return errors.New("sendgrid unavailable")
	}

	mbr := env.seedMember(t, "")
	env.seedCard(t, mbr.ID, true)

	// When: Dispatch
	err := env.service.Dispatch(context.Background(), mbr.ID, "")

	// Then: Surfaced as a dispatch failure
	assert.ErrorIs(t, err, idcard.ErrDispatchFailed)
}
