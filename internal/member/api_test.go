package member_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/onemapafrica/member-hub-api/internal/member"
	"github.com/onemapafrica/member-hub-api/internal/model"
	sharedError "github.com/onemapafrica/member-hub-api/internal/shared/error"
	"github.com/onemapafrica/member-hub-api/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMemberRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	memberService := member.NewMemberService(db, member.NewMemberRepository())
	memberHandler := member.NewMemberHandler(memberService)

	router := testutil.SetupTestRouter()
	router.POST("/api/members", memberHandler.Create)
	router.GET("/api/members", memberHandler.List)
	router.GET("/api/members/:id", memberHandler.Get)
	router.PUT("/api/members/:id", memberHandler.Update)
	router.DELETE("/api/members/:id", memberHandler.Delete)

	return router, db
}

func createMember(t *testing.T, router *gin.Engine, email string) member.MemberResponse {
	t.Helper()

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/members",
		Body: member.CreateMemberRequest{
			FirstName: "Fatou",
			LastName:  "Sow",
			Email:     email,
			Phone:     "+221771112233",
			Country:   "Senegal",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response member.MemberResponse
	testutil.ParseResponse(t, recorder, &response)
	return response
}

func TestCreateMember_Success(t *testing.T) {
	// Given: An empty register
	router, _ := setupMemberRouter(t)

	// When: Create a member with only the required fields
	response := createMember(t, router, "fatou@example.org")

	// Then: Membership id is assigned and defaults applied
	assert.Equal(t, "OMA-000001", response.MembershipID)
	assert.Equal(t, model.MemberStatusPending, response.Status)
	assert.Equal(t, model.RoleMember, response.Role)
	assert.NotZero(t, response.ID)
}

func TestCreateMember_SequentialMembershipIDs(t *testing.T) {
	// Given: An empty register
	router, _ := setupMemberRouter(t)

	// When: Create two members
	first := createMember(t, router, "first@example.org")
	second := createMember(t, router, "second@example.org")

	// Then: Membership ids are sequential
	assert.Equal(t, "OMA-000001", first.MembershipID)
	assert.Equal(t, "OMA-000002", second.MembershipID)
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	// Given: An existing member
	router, _ := setupMemberRouter(t)
	createMember(t, router, "taken@example.org")

	// When: Create another member with the same email
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/members",
		Body: member.CreateMemberRequest{
			FirstName: "Other",
			LastName:  "Person",
			Email:     "taken@example.org",
			Phone:     "+221771112244",
		},
	})

	// Then: Conflict
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-002", errorResponse.Code)
}

func TestCreateMember_InvalidPhone(t *testing.T) {
	// Given: An empty register
	router, _ := setupMemberRouter(t)

	// When: Create with a phone that is not a phone
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/members",
		Body: map[string]string{
			"firstName": "Fatou",
			"lastName":  "Sow",
			"email":     "fatou@example.org",
			"phone":     "not-a-phone",
		},
	})

	// Then: Validation error
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "ERROR-001", errorResponse.Code)
}

func TestGetMember_WithCurrentCard(t *testing.T) {
	// Given: A member holding a card
	router, db := setupMemberRouter(t)
	created := createMember(t, router, "holder@example.org")

	crd := &model.Card{
		CardID:     "OMA-2026-014",
		MemberID:   created.ID,
		IssueDate:  time.Now().UTC(),
		ExpiryDate: time.Now().UTC().AddDate(1, 0, 0),
		IsActive:   true,
		QRCodeURL:  "data:image/png;base64,aGVsbG8=",
	}
	require.NoError(t, db.Create(crd).Error)

	// When: Get the member
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/members/%d", created.ID),
	})

	// Then: The detail response embeds the current card
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.MemberDetailResponse
	testutil.ParseResponse(t, recorder, &response)
	require.NotNil(t, response.Member)
	assert.Equal(t, created.MembershipID, response.Member.MembershipID)
	require.NotNil(t, response.Card)
	assert.Equal(t, "OMA-2026-014", response.Card.CardID)
	assert.True(t, response.Card.IsActive)
}

func TestGetMember_WithoutCard(t *testing.T) {
	// Given: A member with no card
	router, _ := setupMemberRouter(t)
	created := createMember(t, router, "nocard@example.org")

	// When: Get the member
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    fmt.Sprintf("/api/members/%d", created.ID),
	})

	// Then: Card is absent, not an error
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.MemberDetailResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Nil(t, response.Card)
}

func TestGetMember_NotFound(t *testing.T) {
	// Given: An empty register
	router, _ := setupMemberRouter(t)

	// When: Get an unknown id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/members/424242",
	})

	// Then: Not found
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-001", errorResponse.Code)
}

func TestListMembers_SearchAndStatusFilter(t *testing.T) {
	// Given: Members in different statuses
	router, db := setupMemberRouter(t)
	createMember(t, router, "pending@example.org")

	active := &model.Member{
		MembershipID: "OMA-000099",
		FirstName:    "Moussa",
		LastName:     "Traore",
		Email:        "moussa@example.org",
		Phone:        "+223651234567",
		Status:       model.MemberStatusActive,
		Role:         model.RoleMember,
	}
	require.NoError(t, db.Create(active).Error)

	// When: Filter by status
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/members?status=Active",
	})

	// Then: Only the active member is returned
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Members, 1)
	assert.Equal(t, "Moussa", response.Members[0].FirstName)
	assert.Equal(t, int64(1), response.Total)

	// When: Search by name fragment
	searchRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/members?search=Traore",
	})

	// Then: The search matches across name fields
	assert.Equal(t, http.StatusOK, searchRecorder.Code)
	testutil.ParseResponse(t, searchRecorder, &response)
	require.Len(t, response.Members, 1)
	assert.Equal(t, "Moussa", response.Members[0].FirstName)
}

func TestListMembers_Pagination(t *testing.T) {
	// Given: Three members
	router, _ := setupMemberRouter(t)
	for i := 0; i < 3; i++ {
		createMember(t, router, fmt.Sprintf("page%d@example.org", i))
	}

	// When: Request page 2 with a page size of 2
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/members?page=2&limit=2",
	})

	// Then: One member remains on the second page
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.ListMembersResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Len(t, response.Members, 1)
	assert.Equal(t, int64(3), response.Total)
	assert.Equal(t, 2, response.Page)
}

func TestUpdateMember_PartialUpdate(t *testing.T) {
	// Given: An existing member
	router, _ := setupMemberRouter(t)
	created := createMember(t, router, "update@example.org")

	// When: Update only the status
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    fmt.Sprintf("/api/members/%d", created.ID),
		Body:   map[string]string{"membershipStatus": model.MemberStatusActive},
	})

	// Then: The status changed; everything else is untouched
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response member.MemberResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, model.MemberStatusActive, response.Status)
	assert.Equal(t, created.FirstName, response.FirstName)
	assert.Equal(t, created.MembershipID, response.MembershipID)
}

func TestDeleteMember(t *testing.T) {
	// Given: An existing member
	router, db := setupMemberRouter(t)
	created := createMember(t, router, "delete@example.org")

	// When: Delete the member
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    fmt.Sprintf("/api/members/%d", created.ID),
	})

	// Then: Gone from the register
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
