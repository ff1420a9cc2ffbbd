package idcard

import (
	"context"
	"errors"
	"fmt"

	"github.com/onemapafrica/member-hub-api/internal/card"
	"github.com/onemapafrica/member-hub-api/internal/config"
	"github.com/onemapafrica/member-hub-api/internal/member"
	"github.com/onemapafrica/member-hub-api/internal/model"
	"github.com/onemapafrica/member-hub-api/internal/qr"
	"github.com/onemapafrica/member-hub-api/internal/shared/logger"
	"github.com/onemapafrica/member-hub-api/internal/shared/mail"
	"github.com/onemapafrica/member-hub-api/internal/signature"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Document is a rendered ID card ready to download or dispatch.
type Document struct {
	Filename string
	Data     []byte
}

// IDCardService renders member ID cards and delivers them by mail. Rendering
// refuses inactive cards before any image is fetched.
type IDCardService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	cardRepository   *card.CardRepository
	signatureService *signature.SignatureService
	fetcher          *Fetcher
	renderer         *Renderer
	sender           mail.Sender
	dispatchAddress  string
}

func NewIDCardService(
	db *gorm.DB,
	cfg *config.Config,
	memberRepository *member.MemberRepository,
	cardRepository *card.CardRepository,
	signatureService *signature.SignatureService,
	sender mail.Sender,
) *IDCardService {
	return &IDCardService{
		db:               db,
		memberRepository: memberRepository,
		cardRepository:   cardRepository,
		signatureService: signatureService,
		fetcher:          NewFetcher(cfg.Card.ImageFetchTimeout),
		renderer:         NewRenderer(),
		sender:           sender,
		dispatchAddress:  cfg.Mail.DispatchAddress,
	}
}

// Export renders the member's card as a PDF document.
func (s *IDCardService) Export(ctx context.Context, memberID uint32) (*Document, error) {
	mbr, crd, err := s.resolve(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.export(ctx, mbr, crd)
}

func (s *IDCardService) export(ctx context.Context, mbr *model.Member, crd *model.Card) (*Document, error) {
	input, err := s.gather(ctx, mbr, crd)
	if err != nil {
		logger.FromContext(ctx).Error("id card image gather failed",
			"memberId", mbr.ID,
			"error", err,
		)
		return nil, ErrRenderFailed
	}

	data, err := s.renderer.Render(input)
	if err != nil {
		logger.FromContext(ctx).Error("id card render failed",
			"memberId", mbr.ID,
			"cardId", crd.CardID,
			"error", err,
		)
		return nil, ErrRenderFailed
	}

	return &Document{
		Filename: fmt.Sprintf("%s-id-card.pdf", crd.CardID),
		Data:     data,
	}, nil
}

// Dispatch renders the member's card and emails it. An empty recipient falls
// back to the configured dispatch address, then to the member's own email.
func (s *IDCardService) Dispatch(ctx context.Context, memberID uint32, recipient string) error {
	mbr, crd, err := s.resolve(ctx, memberID)
	if err != nil {
		return err
	}

	doc, err := s.export(ctx, mbr, crd)
	if err != nil {
		return err
	}

	if recipient == "" {
		recipient = s.dispatchAddress
	}
	if recipient == "" {
		recipient = mbr.Email
	}

	return s.send(ctx, recipient, mbr.FullName(), doc)
}

// DispatchDocument emails an already-rendered document, as uploaded by the
// web client.
func (s *IDCardService) DispatchDocument(ctx context.Context, recipient, name string, doc *Document) error {
	if recipient == "" {
		recipient = s.dispatchAddress
	}
	return s.send(ctx, recipient, name, doc)
}

func (s *IDCardService) send(ctx context.Context, recipient, name string, doc *Document) error {
	msg := &mail.Message{
		ToName:    name,
		ToAddress: recipient,
		Subject:   "Your One Map Africa membership ID card",
		PlainText: "Please find your membership ID card attached.",
		Attachments: []mail.Attachment{{
			Filename:    doc.Filename,
			ContentType: "application/pdf",
			Data:        doc.Data,
		}},
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		logger.FromContext(ctx).Error("id card dispatch failed",
			"recipient", recipient,
			"error", err,
		)
		return ErrDispatchFailed
	}
	return nil
}

// resolve loads the member and their card and applies the inactive guard, so
// no rendering work starts for a card that may not be exported.
func (s *IDCardService) resolve(ctx context.Context, memberID uint32) (*model.Member, *model.Card, error) {
	mbr, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, member.ErrMemberNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find member: %w", err)
	}

	crd, err := s.cardRepository.FindByMemberID(ctx, s.db, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, card.ErrCardNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find card: %w", err)
	}

	if !crd.IsActive {
		return nil, nil, card.ErrCardInactive
	}

	return mbr, crd, nil
}

// gather collects every image the renderer needs. All fetches complete, or
// the whole render aborts; the renderer never sees a partial set.
func (s *IDCardService) gather(ctx context.Context, mbr *model.Member, crd *model.Card) (*RenderInput, error) {
	qrPNG, err := qr.DecodeDataURI(crd.QRCodeURL)
	if err != nil {
		return nil, fmt.Errorf("decode stored qr: %w", err)
	}

	input := &RenderInput{
		Member: mbr,
		Card:   crd,
		QRCode: qrPNG,
	}

	g, ctx := errgroup.WithContext(ctx)

	if mbr.PhotoURL != "" {
		g.Go(func() error {
			photo, err := s.fetcher.Fetch(ctx, mbr.PhotoURL)
			if err != nil {
				return err
			}
			input.Photo = photo
			return nil
		})
	}

	g.Go(func() error {
		img, err := s.signatureService.Snapshot(ctx)
		if errors.Is(err, signature.ErrSignatureNotFound) {
			return nil // cards render without a signature until one is set
		}
		if err != nil {
			return err
		}
		input.Signature = &ImageBlob{ContentType: img.ContentType, Data: img.Data}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return input, nil
}
