package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/navstation/navstation/internal/domain/entity"
	"github.com/navstation/navstation/internal/domain/repository"
	"github.com/navstation/navstation/pkg/apperrors"
	"github.com/navstation/navstation/pkg/validation"
)

const (
	MsgEmptyLinkFields = "名称和URL不能为空"
	MsgBadLinkName     = "名称长度为1-100字符"
	MsgBadLinkURL      = "URL必须是以http或https开头的绝对地址，且不超过2000字符"
	MsgListFailed      = "获取链接失败"
	MsgCreateFailed    = "添加链接失败"
	MsgDeleteFailed    = "删除链接失败"
	MsgLinkNotFound    = "链接不存在或无权限删除"
	MsgDeleteOK        = "删除成功"
)

// LinkService is owner-scoped CRUD over bookmarks. Every operation takes the
// verified identity from the access guard; there is no unscoped path.
type LinkService struct {
	Links  repository.LinkRepository
	Logger *logrus.Logger
}

func NewLinkService(links repository.LinkRepository, logger *logrus.Logger) *LinkService {
	return &LinkService{Links: links, Logger: logger}
}

func (s *LinkService) List(ctx context.Context, ownerID int64) ([]entity.Link, error) {
	links, err := s.Links.ListByOwner(ctx, ownerID)
	if err != nil {
		s.Logger.WithError(err).WithField("owner_id", ownerID).Error("link list failed")
		return nil, apperrors.Wrap(apperrors.KindInternal, MsgListFailed, err)
	}
	return links, nil
}

// Create validates name and url fully before touching the store.
func (s *LinkService) Create(ctx context.Context, ownerID int64, name, url string) (*entity.Link, error) {
	name = validation.SanitizeText(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return nil, apperrors.New(apperrors.KindValidation, MsgEmptyLinkFields)
	}
	if !validation.LinkName(name) {
		return nil, apperrors.New(apperrors.KindValidation, MsgBadLinkName)
	}
	if !validation.LinkURL(url) {
		return nil, apperrors.New(apperrors.KindValidation, MsgBadLinkURL)
	}

	l := &entity.Link{OwnerID: ownerID, Name: name, URL: url}
	if err := s.Links.Create(ctx, l); err != nil {
		s.Logger.WithError(err).WithField("owner_id", ownerID).Error("link insert failed")
		return nil, apperrors.Wrap(apperrors.KindInternal, MsgCreateFailed, err)
	}
	return l, nil
}

// Delete removes the owner's link. A missing link and another user's link are
// the same NotFound to the caller.
func (s *LinkService) Delete(ctx context.Context, ownerID, linkID int64) error {
	if err := s.Links.DeleteOwned(ctx, ownerID, linkID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.New(apperrors.KindNotFound, MsgLinkNotFound)
		}
		s.Logger.WithError(err).WithField("owner_id", ownerID).Error("link delete failed")
		return apperrors.Wrap(apperrors.KindInternal, MsgDeleteFailed, err)
	}
	return nil
}
