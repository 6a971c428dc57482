package provisioning

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"doctrack/internal/events"
	"doctrack/internal/identity"
	identityerrors "doctrack/internal/identity/errors"
	"doctrack/internal/invite"
	"doctrack/internal/messaging/kafka"
	"doctrack/internal/profile"
	profileerrors "doctrack/internal/profile/errors"
	provisioningerrors "doctrack/internal/provisioning/errors"
	"doctrack/internal/shared/apperror"
	"doctrack/internal/shared/contextutil"
	"doctrack/internal/staff"
	stafferrors "doctrack/internal/staff/errors"
	"doctrack/internal/verification"
	verificationerrors "doctrack/internal/verification/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

// Service runs the account provisioning flows. Every flow that touches more
// than one store is a compensated step sequence so a mid-flow failure never
// strands a half-created account.
type Service interface {
	CreateUser(ctx context.Context, token string, req CreateUserRequest) (CreateUserResponse, error)
	InviteStaff(ctx context.Context, token string, req InviteStaffRequest) (InviteStaffResponse, error)
	VerifyStaff(ctx context.Context, req VerifyStaffRequest) (VerifyStaffResponse, error)
	DeleteUser(ctx context.Context, token, userID string) (DeleteUserResponse, error)
}

type service struct {
	guard    *Guard
	ids      identity.Store
	profiles profile.Repository
	staff    staff.Repository
	codes    verification.Issuer
	mail     invite.Sender
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	guard *Guard,
	ids identity.Store,
	profiles profile.Repository,
	staffRepo staff.Repository,
	codes verification.Issuer,
	mail invite.Sender,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("provisioning.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("provisioning.service")
	}
	return &service{
		guard:    guard,
		ids:      ids,
		profiles: profiles,
		staff:    staffRepo,
		codes:    codes,
		mail:     mail,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) CreateUser(ctx context.Context, token string, req CreateUserRequest) (CreateUserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	callerID, err := s.guard.RequireAdmin(ctx, token)
	if err != nil {
		return CreateUserResponse{}, err
	}

	s.logger.Info("create user requested",
		zap.String("request_id", rid),
		zap.String("caller_id", callerID),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	var ident *identity.Identity

	steps := []Step{
		{
			Name: "identity.create",
			Run: func(ctx context.Context) error {
				created, err := s.ids.CreateUser(ctx, req.Email, req.Password, true)
				if err != nil {
					return mapIdentityCreateError(err)
				}
				ident = created
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.ids.DeleteUser(ctx, ident.ID)
			},
		},
		{
			Name: "identity.set_role",
			Run: func(ctx context.Context) error {
				if err := s.ids.SetRole(ctx, ident.ID, req.Role); err != nil {
					return provisioningerrors.ErrIdentityCreationFailed.WithCause(err)
				}
				return nil
			},
			// Claims are deleted with the account; nothing to undo here.
		},
		{
			Name: "profile.create",
			Run: func(ctx context.Context) error {
				p := &profile.Profile{
					ID:         ident.ID,
					Email:      req.Email,
					FullName:   req.FullName,
					Role:       req.Role,
					Department: req.Department,
				}
				if err := s.profiles.Create(ctx, p); err != nil {
					return mapProfileCreateError(err)
				}
				return nil
			},
		},
	}

	if err := execute(ctx, steps); err != nil {
		s.logger.Error("create user failed",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return CreateUserResponse{}, err
	}

	s.logger.Info("user created",
		zap.String("request_id", rid),
		zap.String("user_id", ident.ID),
		zap.String("role", req.Role),
	)

	resp := CreateUserResponse{
		Message: "User created successfully",
		User: ProvisionedUser{
			ID:       ident.ID,
			Email:    req.Email,
			FullName: req.FullName,
			Role:     req.Role,
		},
	}
	if req.Department != nil {
		resp.User.Department = *req.Department
	}
	return resp, nil
}

func (s *service) InviteStaff(ctx context.Context, token string, req InviteStaffRequest) (InviteStaffResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	callerID, err := s.guard.RequireAdmin(ctx, token)
	if err != nil {
		return InviteStaffResponse{}, err
	}

	s.logger.Info("invite staff requested",
		zap.String("request_id", rid),
		zap.String("caller_id", callerID),
		zap.String("email", req.Email),
	)

	// A registered profile on this email means the person already has an
	// account; inviting them again would only strand a staff row.
	if _, err := s.profiles.FindByEmail(ctx, req.Email); err == nil {
		return InviteStaffResponse{}, profileerrors.ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return InviteStaffResponse{}, err
	}

	if _, err := s.staff.FindByEmail(ctx, req.Email); err == nil {
		return InviteStaffResponse{}, stafferrors.ErrStaffAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return InviteStaffResponse{}, stafferrors.ErrStaffLookupFailed.WithCause(err)
	}

	record := &staff.Staff{
		Name:  req.Name,
		Email: req.Email,
	}
	if req.PositionID != nil {
		id, err := uuid.Parse(*req.PositionID)
		if err != nil {
			return InviteStaffResponse{}, apperror.InvalidField("position_id")
		}
		record.PositionID = &id
	}
	if req.OfficeID != nil {
		id, err := uuid.Parse(*req.OfficeID)
		if err != nil {
			return InviteStaffResponse{}, apperror.InvalidField("office_id")
		}
		record.OfficeID = &id
	}

	var code string

	steps := []Step{
		{
			Name: "verification.issue",
			Run: func(ctx context.Context) error {
				issued, err := s.codes.Issue(ctx, req.Email)
				if err != nil {
					return err
				}
				code = issued
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.codes.Revoke(ctx, req.Email)
			},
		},
		{
			Name: "staff.create",
			Run: func(ctx context.Context) error {
				if err := s.staff.Create(ctx, record); err != nil {
					return staff.MapRepositoryError(err)
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.staff.Delete(ctx, record.ID.String())
			},
		},
		{
			Name: "invite.send",
			Run: func(ctx context.Context) error {
				if err := s.mail.SendInvitation(ctx, req.Email, req.Name, code); err != nil {
					return provisioningerrors.ErrInvitationFailed.WithCause(err)
				}
				return nil
			},
		},
	}

	if err := execute(ctx, steps); err != nil {
		s.logger.Error("invite staff failed",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return InviteStaffResponse{}, err
	}

	s.queueStaffInvitedEvent(ctx, rid, record, callerID)

	loaded, err := s.staff.FindByID(ctx, record.ID.String())
	if err != nil {
		// The invitation already went out; respond with what we have.
		loaded = record
	}

	s.logger.Info("staff invited",
		zap.String("request_id", rid),
		zap.String("staff_id", record.ID.String()),
	)

	return InviteStaffResponse{
		Message: "Invitation sent",
		Staff:   staff.MapToResponse(*loaded),
	}, nil
}

func (s *service) VerifyStaff(ctx context.Context, req VerifyStaffRequest) (VerifyStaffResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	// Unknown emails get the same answer as bad codes so the endpoint
	// cannot be used to probe who has been invited.
	record, err := s.staff.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VerifyStaffResponse{}, verificationerrors.ErrCodeInvalidOrExpired
		}
		return VerifyStaffResponse{}, staff.MapRepositoryError(err)
	}

	if err := s.codes.Verify(ctx, req.Email, req.Code); err != nil {
		return VerifyStaffResponse{}, err
	}

	var ident *identity.Identity

	steps := []Step{
		{
			Name: "identity.create",
			Run: func(ctx context.Context) error {
				created, err := s.ids.CreateUser(ctx, req.Email, req.Password, true)
				if err != nil {
					return mapIdentityCreateError(err)
				}
				ident = created
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.ids.DeleteUser(ctx, ident.ID)
			},
		},
		{
			Name: "identity.set_role",
			Run: func(ctx context.Context) error {
				if err := s.ids.SetRole(ctx, ident.ID, profile.RoleUser); err != nil {
					return provisioningerrors.ErrIdentityCreationFailed.WithCause(err)
				}
				return nil
			},
		},
		{
			Name: "profile.create",
			Run: func(ctx context.Context) error {
				p := &profile.Profile{
					ID:         ident.ID,
					Email:      req.Email,
					FullName:   record.Name,
					Role:       profile.RoleUser,
					PositionID: record.PositionID,
				}
				if err := s.profiles.Create(ctx, p); err != nil {
					return mapProfileCreateError(err)
				}
				return nil
			},
		},
	}

	if err := execute(ctx, steps); err != nil {
		s.logger.Error("verify staff failed",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return VerifyStaffResponse{}, err
	}

	// Revoke only after the whole flow succeeded. A failure above leaves
	// the code live so the invitee can simply retry.
	if err := s.codes.Revoke(ctx, req.Email); err != nil {
		s.logger.Warn("verification code revoke failed",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
			zap.Error(err),
		)
	}

	s.logger.Info("staff verified",
		zap.String("request_id", rid),
		zap.String("user_id", ident.ID),
		zap.String("staff_id", record.ID.String()),
	)

	return VerifyStaffResponse{
		Message: "Account activated",
		User: VerifiedUser{
			ID:    ident.ID,
			Email: req.Email,
			Name:  record.Name,
		},
	}, nil
}

func (s *service) DeleteUser(ctx context.Context, token, userID string) (DeleteUserResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	callerID, err := s.guard.RequireAdmin(ctx, token)
	if err != nil {
		return DeleteUserResponse{}, err
	}

	target, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return DeleteUserResponse{}, profile.MapRepositoryError(err)
	}

	if target.Role == profile.RoleAdmin {
		return DeleteUserResponse{}, provisioningerrors.ErrCannotDeleteAdmin
	}

	// Identity first. If the provider delete fails the profile stays
	// intact, so the account is still whole and the admin can retry.
	if err := s.ids.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, identityerrors.ErrIdentityNotFound) {
			s.logger.Error("identity delete failed",
				zap.String("request_id", rid),
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return DeleteUserResponse{}, provisioningerrors.ErrIdentityDeletionFailed.WithCause(err)
		}
		s.logger.Warn("identity already absent, removing profile anyway",
			zap.String("request_id", rid),
			zap.String("user_id", userID),
		)
	}

	// No cascade between the stores, so the profile goes explicitly.
	if err := s.profiles.Delete(ctx, userID); err != nil {
		s.logger.Error("profile delete failed after identity delete, profile is dangling",
			zap.String("request_id", rid),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return DeleteUserResponse{}, profile.MapRepositoryError(err)
	}

	// Leftover invitation artifacts are best-effort cleanup.
	if rec, err := s.staff.FindByEmail(ctx, target.Email); err == nil {
		if err := s.staff.Delete(ctx, rec.ID.String()); err != nil {
			s.logger.Warn("staff cleanup failed",
				zap.String("request_id", rid),
				zap.String("staff_id", rec.ID.String()),
				zap.Error(err),
			)
		}
	}
	if err := s.codes.Revoke(ctx, target.Email); err != nil {
		s.logger.Warn("verification code cleanup failed",
			zap.String("request_id", rid),
			zap.String("email", target.Email),
			zap.Error(err),
		)
	}

	s.logger.Info("user deleted",
		zap.String("request_id", rid),
		zap.String("caller_id", callerID),
		zap.String("user_id", userID),
	)

	return DeleteUserResponse{Message: "User deleted"}, nil
}

func (s *service) queueStaffInvitedEvent(ctx context.Context, rid string, record *staff.Staff, invitedBy string) {
	if s.outbox == nil {
		return
	}

	event := events.StaffInvitedEvent{
		EventType:  "staff_invited",
		StaffID:    record.ID.String(),
		Email:      record.Email,
		Name:       record.Name,
		InvitedBy:  invitedBy,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal staff_invited event failed", zap.String("request_id", rid), zap.Error(err))
		return
	}

	if err := s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     rid,
		AggregateType: "staff",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.StaffInvitedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("staff_invited outbox persist failed",
			zap.String("request_id", rid),
			zap.String("staff_id", record.ID.String()),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("staff_invited outbox queued",
		zap.String("request_id", rid),
		zap.String("staff_id", record.ID.String()),
	)
}

func mapIdentityCreateError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return provisioningerrors.ErrIdentityCreationFailed.WithCause(err)
}

func mapProfileCreateError(err error) error {
	mapped := profile.MapRepositoryError(err)
	var appErr *apperror.AppError
	if errors.As(mapped, &appErr) {
		return mapped
	}
	return provisioningerrors.ErrProfileCreationFailed.WithCause(err)
}
