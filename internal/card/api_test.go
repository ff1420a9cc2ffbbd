package card_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/onemapafrica/member-hub-api/internal/card"
	"github.com/onemapafrica/member-hub-api/internal/member"
	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/qr"
	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/testutil"
	"github.com/onemapafrica/member-hub-api/internal/verify"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCardRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	cfg := testutil.NewTestConfig()
	verificationService := verify.NewVerificationService(db, card.NewCardRepository(), member.NewMemberRepository())
	cardService := card.NewCardService(db, cfg, card.NewCardRepository(), member.NewMemberRepository(), qr.NewCodec(cfg), verificationService)
	cardHandler := card.NewCardHandler(cardService)

	router := testutil.SetupTestRouter()
	router.POST("/api/members/:id/generate-card", cardHandler.Generate)
	router.PATCH("/api/members/:id/revoke-card", cardHandler.Revoke)
	router.PATCH("/api/members/:id/reactivate-card", cardHandler.Reactivate)

	return router, db
}

func seedMember(t *testing.T, db *gorm.DB) *model.Member {
	t.Helper()

	mbr := &model.Member{
		MembershipID: "OMA-000007",
		FirstName:    "Kwame",
		LastName:     "Mensah",
		Email:        "kwame@example.org",
		Phone:        "+233201234567",
		Country:      "Ghana",
		Status:       model.MemberStatusActive,
		Role:         model.RoleStaff,
	}
	require.NoError(t, db.Create(mbr).Error)
	return mbr
}

func generateCard(t *testing.T, router *gin.Engine, memberID uint32) card.CardResponse {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/members/%d/generate-card", memberID),
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response card.CardResponse
	testutil.ParseResponse(t, recorder, &response)
	return response
}

func TestGenerateCard_Success(t *testing.T) {
	// Given: A member without a card
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)

	// When: Generate a card
	response := generateCard(t, router, mbr.ID)

	// Then: The card carries a dated serial, one-year expiry and a QR payload
	year := time.Now().UTC().Year()
	assert.Equal(t, fmt.Sprintf("OMA-%d-001", year), response.CardID)
	assert.Equal(t, mbr.ID, response.MemberID)
	assert.True(t, response.IsActive)
	assert.True(t, response.ExpiryDate.Equal(response.IssueDate.AddDate(1, 0, 0)))
	assert.True(t, strings.HasPrefix(response.QRCodeURL, "data:image/png;base64,"))

	// Then: The QR payload decodes to the verification URL for this serial
	png, err := qr.DecodeDataURI(response.QRCodeURL)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestGenerateCard_MemberAlreadyHoldsCard(t *testing.T) {
	// Given: A member who already holds a card
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)
	generateCard(t, router, mbr.ID)

	// When: Generate again
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    fmt.Sprintf("/api/members/%d/generate-card", mbr.ID),
	})

	// Then: Rejected, one card per member
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CARD-002", errorResponse.Code)
}

func TestGenerateCard_MemberNotFound(t *testing.T) {
	// Given: No members
	router, _ := setupCardRouter(t)

	// When: Generate for an unknown member id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/members/9999/generate-card",
	})

	// Then: Not found
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestGenerateCard_ConcurrentRequests_SingleCard(t *testing.T) {
	// Given: A member without a card, and a service wired as in production
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})
	mbr := seedMember(t, db)

	cfg := testutil.NewTestConfig()
	verificationService := verify.NewVerificationService(db, card.NewCardRepository(), member.NewMemberRepository())
	cardService := card.NewCardService(db, cfg, card.NewCardRepository(), member.NewMemberRepository(), qr.NewCodec(cfg), verificationService)

	// When: Two callers race to generate a card for the same member
	type outcome struct {
		response *card.CardResponse
		err      error
	}
	outcomes := make(chan outcome, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			response, err := cardService.Generate(context.Background(), mbr.ID)
			outcomes <- outcome{response: response, err: err}
		}()
	}
	wg.Wait()
	close(outcomes)

	// Then: The calls collapse into one issuance - exactly one card row, and
	// every caller that succeeded saw the same serial
	var cards []model.Card
	require.NoError(t, db.Where("member_id = ?", mbr.ID).Find(&cards).Error)
	require.Len(t, cards, 1)

	expectedSerial := fmt.Sprintf("OMA-%d-001", time.Now().UTC().Year())
	assert.Equal(t, expectedSerial, cards[0].CardID)

	succeeded := 0
	for result := range outcomes {
		if result.err != nil {
			assert.ErrorIs(t, result.err, card.ErrGenerationFailed)
			continue
		}
		succeeded++
		assert.Equal(t, expectedSerial, result.response.CardID)
	}
	assert.GreaterOrEqual(t, succeeded, 1)
}

func TestRevokeCard_Success(t *testing.T) {
	// Given: An active card
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)
	issued := generateCard(t, router, mbr.ID)

	// When: Revoke with a listed reason
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/revoke-card",
		Body:   card.RevokeCardRequest{Reason: "Lost"},
	})

	// Then: The card is inactive and an event was recorded
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response card.CardResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.False(t, response.IsActive)

	var events []model.CardEvent
	require.NoError(t, db.Where("card_id = ?", cardRowID(t, db, issued.CardID)).Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, model.CardActionRevoke, events[0].Action)
	assert.Equal(t, "Lost", events[0].Reason)
}

func TestRevokeCard_AlreadyInactive_IsIdempotent(t *testing.T) {
	// Given: A card revoked once already
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)
	issued := generateCard(t, router, mbr.ID)

	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/revoke-card",
		Body:   card.RevokeCardRequest{Reason: "Stolen"},
	})
	require.Equal(t, http.StatusOK, first.Code)

	// When: Revoke again
	second := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/revoke-card",
		Body:   card.RevokeCardRequest{Reason: "Lost"},
	})

	// Then: Succeeds without writing a second event
	assert.Equal(t, http.StatusOK, second.Code)

	var response card.CardResponse
	testutil.ParseResponse(t, second, &response)
	assert.False(t, response.IsActive)

	var count int64
	require.NoError(t, db.Model(&model.CardEvent{}).Where("card_id = ?", cardRowID(t, db, issued.CardID)).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRevokeCard_OtherWithoutDetails_RejectedBeforeStateChange(t *testing.T) {
	// Given: An active card
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)
	issued := generateCard(t, router, mbr.ID)

	// When: Revoke with Other but no free-text details
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/revoke-card",
		Body:   card.RevokeCardRequest{Reason: "Other"},
	})

	// Then: Rejected as a validation error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ERROR-001", errorResponse.Code)

	// Then: The card is untouched
	var stored model.Card
	require.NoError(t, db.Where("card_id = ?", issued.CardID).First(&stored).Error)
	assert.True(t, stored.IsActive)
}

func TestRevokeCard_UnlistedReason_Rejected(t *testing.T) {
	// Given: An active card
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)
	issued := generateCard(t, router, mbr.ID)

	// When: Revoke with a reason outside the accepted list
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/revoke-card",
		Body:   map[string]string{"reason": "Felt like it"},
	})

	// Then: Rejected by binding validation
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestReactivateCard_Success(t *testing.T) {
	// Given: A revoked card
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)
	issued := generateCard(t, router, mbr.ID)

	revoked := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/revoke-card",
		Body:   card.RevokeCardRequest{Reason: "Lost"},
	})
	require.Equal(t, http.StatusOK, revoked.Code)

	// When: Reactivate with a listed reason
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/reactivate-card",
		Body:   card.ReactivateCardRequest{Reason: "Card Found"},
	})

	// Then: The card is active again with both transitions on record
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response card.CardResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.True(t, response.IsActive)

	var count int64
	require.NoError(t, db.Model(&model.CardEvent{}).Where("card_id = ?", cardRowID(t, db, issued.CardID)).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestReactivateCard_AlreadyActive_Rejected(t *testing.T) {
	// Given: An active card
	router, db := setupCardRouter(t)
	mbr := seedMember(t, db)
	issued := generateCard(t, router, mbr.ID)

	// When: Reactivate without a prior revocation
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/" + issued.CardID + "/reactivate-card",
		Body:   card.ReactivateCardRequest{Reason: "Membership Restored"},
	})

	// Then: Rejected, no reason record may double-apply
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CARD-003", errorResponse.Code)
}

func TestRevokeCard_UnknownSerial(t *testing.T) {
	// Given: No cards
	router, _ := setupCardRouter(t)

	// When: Revoke a serial that was never issued
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPatch,
		URL:    "/api/members/OMA-2026-999/revoke-card",
		Body:   card.RevokeCardRequest{Reason: "Lost"},
	})

	// Then: Not found
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CARD-001", errorResponse.Code)
}

func cardRowID(t *testing.T, db *gorm.DB, serial string) uint32 {
	t.Helper()

	var stored model.Card
	require.NoError(t, db.Where("card_id = ?", serial).First(&stored).Error)
	return stored.ID
}
