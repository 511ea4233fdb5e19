package impl

import (
	"context"
	"log/slog"
	"time"

	"kaelo/config"
	deliverycontext "kaelo/internal/delivery/context"
	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/domain/service"
	"kaelo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// registrationConfig drives executeRegistration for the three account kinds.
type registrationConfig struct {
	Name               string
	Email              string
	Password           string
	Role               entity.Role
	BuildNewUser       func() *entity.User
	AttachProfile      func(*entity.User)
	HasProfile         func(*entity.User) bool
	ProfileExistsError func() error
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser registers a plain buyer account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleUser,
		BuildNewUser: func() *entity.User {
			return &entity.User{Name: input.Name, Email: input.Email}
		},
		AttachProfile: func(*entity.User) {},
		HasProfile:    func(*entity.User) bool { return false },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("account already registered")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterCreator registers a route creator, or attaches a creator profile
// to an existing account after re-verifying the password.
func (srv *userService) RegisterCreator(ctx context.Context, input *usecase.RegisterCreatorInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleCreator,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				Name:           input.Name,
				Email:          input.Email,
				CreatorProfile: &entity.CreatorProfile{Bio: input.Bio},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.CreatorProfile = &entity.CreatorProfile{UserID: user.ID, Bio: input.Bio}
		},
		HasProfile: func(user *entity.User) bool { return user.IsCreator() },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("creator profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterBusinessOwner registers a business owner, or attaches the profile
// to an existing account after re-verifying the password.
func (srv *userService) RegisterBusinessOwner(ctx context.Context, input *usecase.RegisterBusinessOwnerInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleBusinessOwner,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				Name:  input.Name,
				Email: input.Email,
				BusinessOwnerProfile: &entity.BusinessOwnerProfile{
					CompanyName: input.CompanyName,
					TaxID:       input.TaxID,
				},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.BusinessOwnerProfile = &entity.BusinessOwnerProfile{
				UserID:      user.ID,
				CompanyName: input.CompanyName,
				TaxID:       input.TaxID,
			}
		},
		HasProfile: func(user *entity.User) bool { return user.IsBusinessOwner() },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("business owner profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

func (srv *userService) executeRegistration(ctx context.Context, cfg *registrationConfig) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, cfg.Email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return srv.handleNewRegistration(ctx, cfg, userRepo, authRepo, &registeredUser)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		return srv.handleExistingAccountRegistration(ctx, cfg, userRepo, authRecord, &registeredUser)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", cfg.Role), slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) handleNewRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	registeredUser **entity.User,
) error {
	hashedPassword, err := srv.hasher.Hash(cfg.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", cfg.Role), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := cfg.BuildNewUser()

	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user during registration")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: cfg.Email,
		PasswordHash:   hashedPassword,
	}

	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to create authentication during registration")
	}

	*registeredUser = newUser

	return nil
}

func (srv *userService) handleExistingAccountRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRecord *entity.Authentication,
	registeredUser **entity.User,
) error {
	if !srv.hasher.Check(cfg.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch when attaching profile", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during registration")
	}

	existingUser, err := userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load existing user for registration")
	}

	if cfg.HasProfile(existingUser) {
		srv.log(ctx).Warn("Profile already exists for account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))

		return cfg.ProfileExistsError()
	}

	if cfg.Name != "" {
		existingUser.Name = cfg.Name
	}

	cfg.AttachProfile(existingUser)

	if err := userRepo.Update(ctx, existingUser); err != nil {
		return errors.Wrap(err, "failed to update user profile during registration")
	}

	srv.log(ctx).Debug("Attached profile to existing account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))
	*registeredUser = existingUser

	return nil
}

// Login verifies credentials and opens a new session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.loadLoginAuth(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user")
	}

	roles := entity.RolesOf(loggedInUser)

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistLoginRefreshToken(ctx, loggedInUser.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

func (srv *userService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findAuthErr error
		authRecord, findAuthErr = repoFactory.NewAuthRepository().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return authRecord, nil
}

func (srv *userService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	// Enforce the session cap. When the cap is reached, every existing
	// session is revoked and the new login becomes the only one.
	if srv.maxActiveSessions > 0 {
		count, err := srv.refreshTokenRepo.CountActiveByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if count >= int64(srv.maxActiveSessions) {
			srv.log(ctx).Info("Session cap reached, revoking existing sessions",
				slog.Any("userID", userID), slog.Int64("active", count))
			if err := srv.refreshTokenRepo.DeleteByUser(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to revoke existing sessions")
			}
		}
	}

	refreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	return srv.refreshTokenRepo.Create(ctx, refreshToken)
}

// GetProfile loads a user with both role profiles attached.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return user, nil
}
