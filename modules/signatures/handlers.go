package signatures

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/slug"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/search"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

const (
	defaultQRSize = 256
	minQRSize     = 128
	maxQRSize     = 1024
)

type listRequest struct{}

type idRequest struct {
	ID string `path:"id"`
}

type upsertRequest struct {
	ID     string                  `path:"id" json:"-"`
	Title  string                  `json:"title"`
	Record signature.ContactRecord `json:"record"`
}

type clientRequest struct {
	ID     string `path:"id"`
	Client string `query:"client"`
}

type qrRequest struct {
	ID   string `path:"id"`
	Size int    `query:"size"`
}

type searchRequest struct {
	Q string `query:"q"`
}

type exportResponse struct {
	Client signature.Client `json:"client"`
	HTML   string           `json:"html"`
}

type qrResponse struct {
	DataURI string `json:"dataUri"`
}

func (m *Module) list(ctx handler.Context, _ listRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	sigs, err := m.opts.Store.List(ctx, ownerID)
	if err != nil {
		return m.fail(ctx, err)
	}
	if sigs == nil {
		sigs = []repository.Signature{}
	}
	return handler.JSON(sigs)
}

func (m *Module) get(ctx handler.Context, req idRequest) handler.Response {
	sig, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(sig)
}

func (m *Module) create(ctx handler.Context, req upsertRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	sig, err := m.Save(ctx, ownerID, uuid.Nil, req.Title, req.Record)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(sig, handler.WithJSONStatus(http.StatusCreated))
}

func (m *Module) update(ctx handler.Context, req upsertRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	sig, err := m.Save(ctx, ownerID, id, req.Title, req.Record)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(sig)
}

func (m *Module) delete(ctx handler.Context, req idRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	if err := m.opts.Store.Delete(ctx, ownerID, id); err != nil {
		return m.fail(ctx, err)
	}
	if err := m.opts.Index.Remove(ctx, id); err != nil {
		m.log.WarnContext(ctx, "failed to remove signature from search index",
			logger.Component("signatures"),
			logger.SignatureID(id),
			logger.Error(err),
		)
	}
	return handler.Empty()
}

func (m *Module) setDefault(ctx handler.Context, req idRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	id, err := parseID(req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	if err := m.opts.Store.SetDefault(ctx, ownerID, id); err != nil {
		return m.fail(ctx, err)
	}
	sig, err := m.opts.Store.Get(ctx, ownerID, id)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(sig)
}

func (m *Module) export(ctx handler.Context, req clientRequest) handler.Response {
	sig, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	client, err := signature.ParseClient(req.Client)
	if err != nil {
		return m.fail(ctx, err)
	}
	html, err := signature.Export(ctx, sig.TemplateID(), sig.Record, client)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(exportResponse{Client: client, HTML: html})
}

func (m *Module) download(ctx handler.Context, req clientRequest) handler.Response {
	sig, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	client, err := signature.ParseClient(req.Client)
	if err != nil {
		return m.fail(ctx, err)
	}
	doc, err := signature.ExportDocument(ctx, sig.TemplateID(), sig.Record, client)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.Download(filename(sig, ".html"), "text/html; charset=utf-8", []byte(doc))
}

func (m *Module) text(ctx handler.Context, req idRequest) handler.Response {
	sig, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.Text(signature.PlainText(sig.Record))
}

func (m *Module) vcard(ctx handler.Context, req idRequest) handler.Response {
	sig, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.Download(filename(sig, ".vcf"), "text/vcard; charset=utf-8", []byte(signature.VCard(sig.Record)))
}

func (m *Module) qr(ctx handler.Context, req qrRequest) handler.Response {
	sig, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	size := req.Size
	if size == 0 {
		size = defaultQRSize
	}
	size = min(max(size, minQRSize), maxQRSize)

	uri, err := signature.VCardQR(sig.Record, size)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.JSON(qrResponse{DataURI: uri})
}

func (m *Module) send(ctx handler.Context, req clientRequest) handler.Response {
	if m.opts.Mailer == nil || m.opts.Users == nil {
		return m.fail(ctx, handler.ErrServiceUnavailable)
	}
	sig, err := m.load(ctx, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}
	client, err := signature.ParseClient(req.Client)
	if err != nil {
		return m.fail(ctx, err)
	}
	user, err := m.opts.Users.GetUserByID(ctx, sig.OwnerID)
	if err != nil {
		return m.fail(ctx, err)
	}
	if err := m.opts.Mailer.SendSignature(ctx, user.Email, sig.Title, sig.Record, client); err != nil {
		return m.fail(ctx, err)
	}
	return handler.EmptyWithStatus(http.StatusAccepted)
}

func (m *Module) search(ctx handler.Context, req searchRequest) handler.Response {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	q := strings.TrimSpace(req.Q)

	sigs, err := m.opts.Store.List(ctx, ownerID)
	if err != nil {
		return m.fail(ctx, err)
	}
	if q == "" {
		return handler.JSON(nonNil(sigs))
	}

	ids, err := m.opts.Index.Search(ctx, ownerID, q)
	if err != nil {
		if !errors.Is(err, search.ErrDisabled) {
			m.log.WarnContext(ctx, "search index unavailable, filtering in memory",
				logger.Component("signatures"),
				logger.Error(err),
			)
		}
		return handler.JSON(nonNil(search.Filter(sigs, q)))
	}

	byID := make(map[uuid.UUID]repository.Signature, len(sigs))
	for _, s := range sigs {
		byID[s.ID] = s
	}
	out := make([]repository.Signature, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return handler.JSON(out)
}

// load fetches a signature of the authenticated user by its path id.
func (m *Module) load(ctx handler.Context, rawID string) (*repository.Signature, error) {
	ownerID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return m.opts.Store.Get(ctx, ownerID, id)
}

// index pushes sig to the search index. Failures only degrade search.
func (m *Module) index(ctx context.Context, sig repository.Signature) {
	if err := m.opts.Index.Index(ctx, sig); err != nil {
		m.log.WarnContext(ctx, "failed to index signature",
			logger.Component("signatures"),
			logger.SignatureID(sig.ID),
			logger.Error(err),
		)
	}
}

func validate(title string, rec signature.ContactRecord) error {
	ve := handler.NewValidationError()
	if err := rec.Validate(); err != nil {
		if v, ok := handler.AsValidationError(err); ok {
			ve = v
		} else {
			return err
		}
	}
	if len([]rune(title)) > 120 {
		ve.Add("title", "must be at most 120 characters")
	}
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// titleOf defaults an empty title to the contact name.
func titleOf(title string, rec signature.ContactRecord) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return rec.Name
}

func filename(sig *repository.Signature, ext string) string {
	return slug.Filename(sig.Record.Name, ext, sig.Title)
}

func nonNil(sigs []repository.Signature) []repository.Signature {
	if sigs == nil {
		return []repository.Signature{}
	}
	return sigs
}
