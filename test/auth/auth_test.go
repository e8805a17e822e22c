package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"testing"

	"github.com/drinkwithme-lk/server/internal/entity"
	userRepo "github.com/drinkwithme-lk/server/internal/repository/user"
	"github.com/drinkwithme-lk/server/pkg/http_util"
	helper_test "github.com/drinkwithme-lk/server/test/helper"
	"github.com/stretchr/testify/assert"
)

var globalResources *helper_test.TestServerResources

func TestMain(m *testing.M) {
	resources, err := helper_test.SetupTestServer(context.TODO())
	var code int

	if err != nil {
		log.Printf("Failed to set up test server: %s", err)
		code = 1
	} else {
		globalResources = resources
		code = m.Run()
	}

	resources.CleanupTestServer()
	os.Exit(code)
}

func TestSignUp(t *testing.T) {
	reqBody := entity.CreateUserRequest{
		Name:     "testname",
		Username: "testuser",
		Password: "password123",
		Email:    "test@example.com",
	}
	body, _ := json.Marshal(reqBody)

	req, err := http.NewRequest(http.MethodPost, helper_test.BaseURL+"/v1/auth/sign-up", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	response := http_util.HTTPResponse[entity.SignUpResponse]{}
	response, err = http_util.DecodeBody[http_util.HTTPResponse[entity.SignUpResponse]](bodyBytes, response)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	assert.Equal(t, "testuser", response.Data.Username)
	assert.NotZero(t, response.Data.ID)
}

func TestSignIn(t *testing.T) {
	reqBody := entity.SignInRequest{
		Email:    "asd@asd.com",
		Username: "testuser123",
		Password: "password123",
	}

	_, err := helper_test.SignUpUser(t, reqBody.Username, reqBody.Password, reqBody.Email)
	if err != nil {
		t.Fatalf("Failed to Sign Up: %v", err)
	}

	token, err := helper_test.SignInUser(t, reqBody.Email, reqBody.Username, reqBody.Password)
	if err != nil {
		t.Fatalf("Failed to Sign In: %v", err)
	}
	assert.NotEmpty(t, token)
}

func TestSignInWrongPassword(t *testing.T) {
	_, err := helper_test.SignUpUser(t, "wrongpass", "password123", "wrongpass@example.com")
	if err != nil {
		t.Fatalf("Failed to Sign Up: %v", err)
	}

	reqBody := entity.SignInRequest{
		Email:    "wrongpass@example.com",
		Username: "wrongpass",
		Password: "not-the-password",
	}
	body, _ := json.Marshal(reqBody)

	req, err := http.NewRequest(http.MethodPost, helper_test.BaseURL+"/v1/auth/sign-in", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAssignRoleTwiceIsNoOp(t *testing.T) {
	users, err := helper_test.PopulateUsers(globalResources.ORM, 1)
	if err != nil {
		t.Fatalf("Failed to populate users: %v", err)
	}

	repo := userRepo.New(globalResources.ORM)
	ctx := context.Background()

	err = repo.AssignRole(ctx, users[0].ID, entity.RoleRestaurantOwner)
	assert.NoError(t, err)
	// The second grant hits the unique index and must still succeed.
	err = repo.AssignRole(ctx, users[0].ID, entity.RoleRestaurantOwner)
	assert.NoError(t, err)

	has, err := repo.HasRole(ctx, users[0].ID, entity.RoleRestaurantOwner)
	assert.NoError(t, err)
	assert.True(t, has)

	var count int64
	result := globalResources.ORM.
		Model(&entity.UserRole{}).
		Where("user_id = ?", users[0].ID).
		Count(&count)
	assert.NoError(t, result.Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthedRouteRejectsMissingToken(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, helper_test.BaseURL+"/v1/profile", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
