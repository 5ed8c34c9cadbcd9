package services

import (
	"fmt"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/sirupsen/logrus"

	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/config"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/models"
	"github.com/NguyenThanhHungDev140503/FitTracker-Web/internal/utils"
)

var (
	authClient *authorizer.AuthorizerClient
	authOnce   sync.Once
)

// IsAuthorizerInitialized returns true if the Authorizer client is initialized
func IsAuthorizerInitialized() bool {
	return authClient != nil
}

// InitAuthorizer initializes the Authorizer client (singleton pattern). The
// redirect URL is derived from the first authenticated request, which is why
// initialization is deferred until then.
func InitAuthorizer(cfg *config.Config, requestProtocol, requestHost string) error {
	var initErr error

	authOnce.Do(func() {
		// Ping the Authorizer service first
		if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
			initErr = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := fmt.Sprintf("%s://%s", requestProtocol, requestHost)
		logrus.WithFields(logrus.Fields{
			"authorizerURL": cfg.AuthzURL,
			"clientID":      cfg.AuthzClientID,
			"redirectURL":   redirectURL,
		}).Info("initializing authorizer client")

		var err error
		authClient, err = authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			initErr = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
	})

	return initErr
}

// ValidateSession validates a session cookie for the given roles and returns
// the identity the Authorizer instance associates with it.
func ValidateSession(cookie string, roles []string) (*authorizer.User, error) {
	if authClient == nil {
		return nil, fmt.Errorf("authorizer client not initialized")
	}

	// Convert roles to []*string
	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := authClient.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}

	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	return res.User, nil
}

// UserFromSession maps the Authorizer identity onto the local user record.
func UserFromSession(u *authorizer.User) *models.User {
	user := &models.User{ID: u.ID}
	if u.Email != "" {
		email := u.Email
		user.Email = &email
	}
	user.FirstName = u.GivenName
	user.LastName = u.FamilyName
	user.ProfileImageURL = u.Picture
	return user
}
