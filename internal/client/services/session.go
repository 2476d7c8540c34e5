package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// SessionStore owns the auth state. It is the only writer of the shared
// session.Holder the API client reads tokens from, and it keeps the local
// store in sync so a restarted client stays logged in.
type SessionStore struct {
	client client.Client
	db     *sql.DB
	holder *session.Holder
	log    logging.Logger
}

func NewSessionStore(c client.Client, db *sql.DB, holder *session.Holder, log logging.Logger) *SessionStore {
	if log == nil {
		log = logging.Discard()
	}
	return &SessionStore{client: c, db: db, holder: holder, log: log}
}

func (s *SessionStore) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Load hydrates the session from the local store. Missing or partial data
// means logged out.
func (s *SessionStore) Load(ctx context.Context) error {
	repo := s.getMetadataRepo(s.db)

	token, _, err := repo.Get(ctx, common.MetaKeyToken)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	userID, _, err := repo.Get(ctx, common.MetaKeyUserID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	sess := models.Session{Token: token, UserID: userID}
	if !sess.Valid() {
		s.holder.Clear()
		return nil
	}
	s.holder.Set(sess)
	return nil
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}
	return nil
}

// Login authenticates and persists token and user id in one transaction.
// The in-memory session changes only after the write commits.
func (s *SessionStore) Login(ctx context.Context, username, password string) (models.Session, error) {
	if err := validateCredentials(username, password); err != nil {
		return models.Session{}, err
	}

	sess, err := s.client.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getMetadataRepo(tx)
		if err := repo.Set(ctx, common.MetaKeyToken, sess.Token); err != nil {
			return err
		}
		return repo.Set(ctx, common.MetaKeyUserID, sess.UserID)
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.holder.Set(sess)
	s.log.Info(ctx, "logged in", "user_id", sess.UserID)
	return sess, nil
}

func (s *SessionStore) Signup(ctx context.Context, username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}
	if err := s.client.Signup(ctx, strings.TrimSpace(username), password); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

// Logout never fails from the user's point of view: the server call is
// best-effort and local state is cleared regardless.
func (s *SessionStore) Logout(ctx context.Context) {
	if s.IsLoggedIn() {
		if err := s.client.Logout(ctx); err != nil {
			s.log.Warn(ctx, "server logout failed", "error", err)
		}
	}

	s.holder.Clear()

	if err := s.getMetadataRepo(s.db).Delete(ctx, common.MetaKeyToken, common.MetaKeyUserID); err != nil {
		s.log.Warn(ctx, "failed to clear saved session", "error", err)
	}
}

func (s *SessionStore) Current() models.Session {
	return s.holder.Get()
}

func (s *SessionStore) IsLoggedIn() bool {
	return s.holder.Get().Valid()
}

// Token implements client.TokenSource.
func (s *SessionStore) Token() string {
	return s.holder.Token()
}
