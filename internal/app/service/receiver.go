package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/ds"
	"github.com/adityaparakhi/Blood-Donation-Management-System/internal/app/repository"

	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

type RequestStore interface {
	CreateRequest(ctx context.Context, request *ds.BloodRequest) error
	GetRequestByID(ctx context.Context, id uint) (*ds.BloodRequest, error)
	SaveRequest(ctx context.Context, request *ds.BloodRequest) error
	DeleteRequest(ctx context.Context, id uint) error
	ListRequestsByEmail(ctx context.Context, email string) ([]ds.BloodRequest, error)
	ListRequestsWithFilters(ctx context.Context, f repository.RequestFilter) ([]ds.BloodRequest, error)
}

type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*ds.User, error)
	ListUsers(ctx context.Context) ([]ds.User, error)
}

// TokenManager decodes bearer credentials and revokes them on logout.
type TokenManager interface {
	ExtractEmail(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// RequestUpdate carries the fields a receiver may overwrite. Every field
// except AmountStatus is applied even when empty.
type RequestUpdate struct {
	Hospital     string  `json:"hospital"`
	Contact      string  `json:"contact"`
	Urgency      string  `json:"urgency"`
	Status       string  `json:"status"`
	AmountStatus *string `json:"amountStatus"`
}

// RequestQuery filters ListRequests. Empty strings and nil mean "any".
type RequestQuery struct {
	Status       string
	AmountStatus string
	DonorID      *uint
}

type ReceiverService struct {
	requests RequestStore
	users    UserStore
	tokens   TokenManager
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewReceiverService(requests RequestStore, users UserStore, tokens TokenManager, logger logrus.FieldLogger) *ReceiverService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReceiverService{
		requests: requests,
		users:    users,
		tokens:   tokens,
		log:      logger.WithField("component", "receiver"),
		now:      time.Now,
	}
}

// CreateRequest files a new request on behalf of the user the bearer token
// belongs to. rawToken is the whole Authorization header value.
func (s *ReceiverService) CreateRequest(ctx context.Context, request ds.BloodRequest, rawToken string) (*ds.BloodRequest, error) {
	email, err := s.emailFromBearer(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, fmt.Errorf("lookup receiver: %w", err)
	}

	request.ID = 0
	request.DonorID = nil
	request.Status = ds.StatusPending
	request.Date = ds.DateOf(s.now())
	request.RequesterID = requester.ID
	request.Requester = requester
	request.RequesterEmail = requester.Email
	request.Amount = AmountForUrgency(request.Urgency)
	request.AmountStatus = ds.AmountPaid

	if err := s.requests.CreateRequest(ctx, &request); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": request.ID,
		"requester":  request.RequesterEmail,
		"urgency":    request.Urgency,
		"amount":     request.Amount,
	}).Info("blood request created")

	return &request, nil
}

func (s *ReceiverService) GetRequestsByEmail(ctx context.Context, email string) ([]ds.BloodRequest, error) {
	list, err := s.requests.ListRequestsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []ds.BloodRequest{}
	}
	return list, nil
}

// UpdateRequest checks existence before validating the body, so a missing id
// is reported as ErrRequestNotFound whatever the payload holds.
func (s *ReceiverService) UpdateRequest(ctx context.Context, id uint, update RequestUpdate) (*ds.BloodRequest, error) {
	existing, err := s.requests.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("load request %d: %w", id, err)
	}

	status, ok := ds.ParseRequestStatus(update.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, update.Status)
	}
	var amountStatus *ds.AmountStatus
	if update.AmountStatus != nil {
		st, ok := ds.ParseAmountStatus(*update.AmountStatus)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmountStatus, *update.AmountStatus)
		}
		amountStatus = &st
	}

	if !existing.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %q -> %q", ErrInvalidStatus, existing.Status, status)
	}

	existing.Hospital = update.Hospital
	existing.Contact = update.Contact
	existing.Urgency = update.Urgency
	existing.Status = status
	existing.Amount = AmountForUrgency(update.Urgency)
	if amountStatus != nil {
		existing.AmountStatus = *amountStatus
	}

	if err := s.requests.SaveRequest(ctx, existing); err != nil {
		return nil, fmt.Errorf("save request %d: %w", id, err)
	}
	return existing, nil
}

// DeleteRequest does not check existence; deleting a missing id succeeds.
func (s *ReceiverService) DeleteRequest(ctx context.Context, id uint) error {
	if err := s.requests.DeleteRequest(ctx, id); err != nil {
		return fmt.Errorf("delete request %d: %w", id, err)
	}
	s.log.WithField("request_id", id).Info("blood request deleted")
	return nil
}

// GetDonorsByBloodGroup scans every user. Role must equal "donor" exactly,
// the blood group is compared case-insensitively.
func (s *ReceiverService) GetDonorsByBloodGroup(ctx context.Context, bloodGroup string) ([]string, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	emails := []string{}
	for _, u := range users {
		if u.Role == ds.RoleDonor && strings.EqualFold(u.BloodGroup, bloodGroup) {
			emails = append(emails, u.Email)
		}
	}
	return emails, nil
}

func (s *ReceiverService) ListRequests(ctx context.Context, q RequestQuery) ([]ds.BloodRequest, error) {
	var f repository.RequestFilter
	if q.Status != "" {
		st, ok := ds.ParseRequestStatus(q.Status)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, q.Status)
		}
		f.Status = &st
	}
	if q.AmountStatus != "" {
		st, ok := ds.ParseAmountStatus(q.AmountStatus)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmountStatus, q.AmountStatus)
		}
		f.AmountStatus = &st
	}
	f.DonorID = q.DonorID

	list, err := s.requests.ListRequestsWithFilters(ctx, f)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []ds.BloodRequest{}
	}
	return list, nil
}

// RevokeToken invalidates the bearer credential for the rest of its lifetime.
func (s *ReceiverService) RevokeToken(ctx context.Context, rawToken string) error {
	token, err := bearerCredential(rawToken)
	if err != nil {
		return err
	}
	if err := s.tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}

func (s *ReceiverService) emailFromBearer(ctx context.Context, rawToken string) (string, error) {
	token, err := bearerCredential(rawToken)
	if err != nil {
		return "", err
	}
	email, err := s.tokens.ExtractEmail(ctx, token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return email, nil
}

func bearerCredential(rawToken string) (string, error) {
	if len(rawToken) <= len(bearerPrefix) || !strings.EqualFold(rawToken[:len(bearerPrefix)], bearerPrefix) {
		return "", fmt.Errorf("%w: missing bearer scheme", ErrInvalidToken)
	}
	token := strings.TrimSpace(rawToken[len(bearerPrefix):])
	if token == "" {
		return "", fmt.Errorf("%w: empty credential", ErrInvalidToken)
	}
	return token, nil
}
