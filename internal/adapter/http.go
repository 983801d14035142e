// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/study-buddy/internal/config"
	"github.com/MKhiriev/study-buddy/internal/logger"
	"github.com/MKhiriev/study-buddy/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAPI struct {
	client *resty.Client

	// resourceTimeout bounds the image endpoints, which move larger
	// payloads than the JSON ones and get their own, longer budget.
	resourceTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPServerAPI constructs the HTTP/REST implementation of [ServerAPI].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the request timeout.
//
// Returns an error wrapping [ErrInvalidURL] if cfg.BaseURL is empty or
// cannot be parsed as a valid URL.
func NewHTTPServerAPI(cfg config.ClientAdapter, log *logger.Logger) (ServerAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAPI{
		client:          client,
		resourceTimeout: cfg.ResourceTimeout,
		logger:          log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignUp implements [ServerAPI]. Success is strictly HTTP 201; any other
// completed status, 2xx included, maps to a [RequestError]. The body is
// decoded tolerantly: the resolved user id prefers the raw top-level "id"
// and an undecodable body yields a nil User, not a failure.
func (h *httpServerAPI) SignUp(ctx context.Context, req models.SignupRequest) (models.SignupResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/signup/")
	if err != nil {
		return models.SignupResult{}, fmt.Errorf("signup request: %w: %v", ErrUnknown, err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return models.SignupResult{}, &RequestError{Status: resp.StatusCode(), Message: extractErrorMessage(resp.Body())}
	}

	result := models.SignupResult{Status: resp.StatusCode()}
	if id, ok := models.TopLevelID(resp.Body()); ok {
		result.UserID = &id
	}

	var user models.SignupUser
	if err := json.Unmarshal(resp.Body(), &user); err == nil {
		result.User = &user
	}
	if result.UserID == nil && result.User != nil && result.User.ID != nil {
		if id, err := strconv.ParseInt(*result.User.ID, 10, 64); err == nil {
			result.UserID = &id
		}
	}

	return result, nil
}

// LogIn implements [ServerAPI]. Credentials travel as query parameters —
// the backend's own anomalous contract, preserved for compatibility.
func (h *httpServerAPI) LogIn(ctx context.Context, username, password string) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"username": username,
			"password": password,
		}).
		Get("/login/")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	result := models.LoginResult{Status: resp.StatusCode()}
	if id, ok := models.TopLevelID(resp.Body()); ok {
		result.UserID = &id
	}

	var user models.LoginUser
	if err := json.Unmarshal(resp.Body(), &user); err == nil {
		result.User = &user
	}
	if result.UserID == nil && result.User != nil && result.User.ID != nil {
		result.UserID = result.User.ID
	}

	return result, nil
}

// GetUser implements [ServerAPI].
func (h *httpServerAPI) GetUser(ctx context.Context, id int64) (models.UserDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/users/{id}/")
	if err != nil {
		return models.UserDTO{}, fmt.Errorf("get user request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserDTO{}, err
	}

	var user models.UserDTO
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserDTO{}, fmt.Errorf("decode user response: %w", ErrDecodingFailed)
	}
	return user, nil
}

// CreateProfile implements [ServerAPI]. The response body is decoded
// tolerantly; a 2xx with an undecodable body still succeeds with an
// all-nil DTO.
func (h *httpServerAPI) CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.ProfileDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/profiles/")
	if err != nil {
		return models.ProfileDTO{}, fmt.Errorf("create profile request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileDTO{}, err
	}

	var profile models.ProfileDTO
	_ = json.Unmarshal(resp.Body(), &profile)
	return profile, nil
}

// UpdateProfile implements [ServerAPI].
func (h *httpServerAPI) UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Put("/profiles/{id}/")
	if err != nil {
		return fmt.Errorf("update profile request: %w: %v", ErrUnknown, err)
	}
	return mapHTTPError(resp)
}

// GetProfile implements [ServerAPI]. Unlike the write endpoints, a rich
// profile that fails to decode is a hard [ErrDecodingFailed]: the caller
// has nothing to render without it.
func (h *httpServerAPI) GetProfile(ctx context.Context, id int64) (models.RichProfileDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/profiles/{id}")
	if err != nil {
		return models.RichProfileDTO{}, fmt.Errorf("get profile request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RichProfileDTO{}, err
	}

	var profile models.RichProfileDTO
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.RichProfileDTO{}, fmt.Errorf("decode profile response: %w", ErrDecodingFailed)
	}
	return profile, nil
}

// ListProfiles implements [ServerAPI]. The backend occasionally returns a
// single object instead of an array; both shapes are accepted.
func (h *httpServerAPI) ListProfiles(ctx context.Context) ([]models.RichProfileDTO, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/profiles/")
	if err != nil {
		return nil, fmt.Errorf("list profiles request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var profiles []models.RichProfileDTO
	if err = json.Unmarshal(resp.Body(), &profiles); err == nil {
		return profiles, nil
	}

	var single models.RichProfileDTO
	if err = json.Unmarshal(resp.Body(), &single); err == nil {
		return []models.RichProfileDTO{single}, nil
	}

	return nil, fmt.Errorf("decode profile list response: %w", ErrDecodingFailed)
}

// UploadProfileImage implements [ServerAPI]. The payload matches the
// mobile client byte for byte: multipart field "image", filename
// "avatar.jpg", JPEG content.
func (h *httpServerAPI) UploadProfileImage(ctx context.Context, profileID int64, jpeg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, h.resourceTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(profileID, 10)).
		SetMultipartField("image", "avatar.jpg", "image/jpeg", bytes.NewReader(jpeg)).
		Post("/profiles/{id}/image/")
	if err != nil {
		return fmt.Errorf("upload image request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Int64("profile_id", profileID).Err(err).Msg("image upload rejected")
		return err
	}
	return nil
}

// FetchProfileImage implements [ServerAPI]. Anything other than a 200
// with a non-empty body is [ErrNoData]; callers render a placeholder.
func (h *httpServerAPI) FetchProfileImage(ctx context.Context, profileID int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, h.resourceTimeout)
	defer cancel()

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(profileID, 10)).
		Get("/profiles/{id}/image/")
	if err != nil {
		return nil, fmt.Errorf("fetch image request: %w: %v", ErrUnknown, err)
	}
	if resp.StatusCode() != http.StatusOK || len(resp.Body()) == 0 {
		return nil, fmt.Errorf("fetch image for profile %d: %w", profileID, ErrNoData)
	}
	return resp.Body(), nil
}

// CreateCourse implements [ServerAPI].
func (h *httpServerAPI) CreateCourse(ctx context.Context, code string) (models.Course, error) {
	var course models.Course
	err := h.createReference(ctx, "/courses/", models.CreateCourseRequest{Code: code}, &course)
	return course, err
}

// ListCourses implements [ServerAPI].
func (h *httpServerAPI) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := h.listReference(ctx, "/courses/", &courses)
	return courses, err
}

// CreateMajor implements [ServerAPI].
func (h *httpServerAPI) CreateMajor(ctx context.Context, name string) (models.Major, error) {
	var major models.Major
	err := h.createReference(ctx, "/majors/", models.CreateMajorRequest{Name: name}, &major)
	return major, err
}

// ListMajors implements [ServerAPI].
func (h *httpServerAPI) ListMajors(ctx context.Context) ([]models.Major, error) {
	var majors []models.Major
	err := h.listReference(ctx, "/majors/", &majors)
	return majors, err
}

// CreateCollege implements [ServerAPI].
func (h *httpServerAPI) CreateCollege(ctx context.Context, name string) (models.College, error) {
	var college models.College
	err := h.createReference(ctx, "/colleges/", models.CreateCollegeRequest{Name: name}, &college)
	return college, err
}

// ListColleges implements [ServerAPI]. A single-object body is wrapped
// into a one-element slice.
func (h *httpServerAPI) ListColleges(ctx context.Context) ([]models.College, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/colleges/")
	if err != nil {
		return nil, fmt.Errorf("list colleges request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var colleges []models.College
	if err = json.Unmarshal(resp.Body(), &colleges); err == nil {
		return colleges, nil
	}

	var single models.College
	if err = json.Unmarshal(resp.Body(), &single); err == nil {
		return []models.College{single}, nil
	}

	return nil, fmt.Errorf("decode college list response: %w", ErrDecodingFailed)
}

// RecordSwipe implements [ServerAPI].
func (h *httpServerAPI) RecordSwipe(ctx context.Context, req models.SwipeRequest) (models.SwipeResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/swipes/")
	if err != nil {
		return models.SwipeResponse{}, fmt.Errorf("record swipe request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SwipeResponse{}, err
	}

	var swipe models.SwipeResponse
	if err = json.Unmarshal(resp.Body(), &swipe); err != nil {
		return models.SwipeResponse{}, fmt.Errorf("decode swipe response: %w", ErrDecodingFailed)
	}
	return swipe, nil
}

// ListUserMatches implements [ServerAPI].
func (h *httpServerAPI) ListUserMatches(ctx context.Context, userID int64) ([]models.UserMatch, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Get("/users/{id}/matches/")
	if err != nil {
		return nil, fmt.Errorf("list matches request: %w: %v", ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var matches []models.UserMatch
	if err = json.Unmarshal(resp.Body(), &matches); err != nil {
		return nil, fmt.Errorf("decode match list response: %w", ErrDecodingFailed)
	}
	return matches, nil
}

// createReference POSTs a lookup-entity creation request and decodes the
// response tolerantly: a 2xx with an undecodable or id-less body is still
// a completed call, the caller falls back to list-and-match.
func (h *httpServerAPI) createReference(ctx context.Context, path string, body, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("create %s request: %w: %v", path, ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	_ = json.Unmarshal(resp.Body(), out)
	return nil
}

func (h *httpServerAPI) listReference(ctx context.Context, path string, out any) error {
	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("list %s request: %w: %v", path, ErrUnknown, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, ErrDecodingFailed)
	}
	return nil
}
