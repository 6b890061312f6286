package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shop_manager/internal/domain/entities"
	"shop_manager/internal/logger"
	"shop_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrEmptyPhotoUpload  = errors.New("empty photo upload")
)

// MaterialInput is one consumed part on an incoming line item. Quantity,
// cost, sell and discount stay nullable end to end; no range validation is
// applied here, values are persisted as sent.
type MaterialInput struct {
	Name       string
	VendorID   *uint
	CategoryID *uint
	ProductID  *uint
	Notes      string
	Quantity   *float64
	Cost       *float64
	Sell       *float64
	Discount   *float64
}

type LineItemInput struct {
	ServiceID *uint
	LaborID   *uint
	Materials []MaterialInput
	TagIDs    []uint
}

// TaskInput carries a free-form "title:description" text. A nil ID means
// create, a non-nil ID means rewrite that task's title and description.
type TaskInput struct {
	ID   *uint
	Text string
}

// DocumentHeader is the full header field set. Every field is written on
// update, including zero values: callers always send the complete header,
// there is no partial patch.
type DocumentHeader struct {
	Title     string
	ClientID  *uint
	VehicleID *uint
	StatusID  *uint

	Subtotal      float64
	Discount      float64
	Tax           float64
	Deposit       float64
	DepositNotes  string
	DepositMethod string
	GrandTotal    float64
	Due           float64

	InternalNotes    string
	Terms            string
	Policy           string
	CustomerNotes    string
	CustomerComments string
}

type CreateDocumentInput struct {
	ID     string
	Type   entities.DocumentType
	Header DocumentHeader
	Photos []string
	Items  []LineItemInput
}

type UpdateDocumentInput struct {
	ID     string
	Header DocumentHeader
	Photos []string
	Items  []LineItemInput
	Tasks  []TaskInput
}

// IDocumentUseCase exposes the estimate/invoice operations:
//   - Create: new estimate or invoice with children
//   - Update: full-replace mutation of header and child collections
//   - Convert: Estimate<->Invoice toggle with the stock side effect
type IDocumentUseCase interface {
	Create(ctx context.Context, companyID uint, in CreateDocumentInput) (entities.Document, error)
	GetByID(ctx context.Context, companyID uint, id string) (entities.Document, error)
	List(ctx context.Context, companyID uint) ([]entities.Document, error)
	Update(ctx context.Context, companyID uint, in UpdateDocumentInput) error
	Convert(ctx context.Context, companyID uint, id string) (entities.Document, error)
	UploadPhoto(ctx context.Context, ext string, data []byte) (string, error)
}

type DocumentUseCase struct {
	repo      interfaces.IDocumentRepository
	inventory interfaces.IInventoryRepository
	tasks     interfaces.ITaskRepository
	photos    interfaces.IPhotoStore
	tx        interfaces.ITransactionManager
	cache     interfaces.IListingCache
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	repo interfaces.IDocumentRepository,
	inventory interfaces.IInventoryRepository,
	tasks interfaces.ITaskRepository,
	photos interfaces.IPhotoStore,
	tx interfaces.ITransactionManager,
	cache interfaces.IListingCache,
) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, inventory: inventory, tasks: tasks, photos: photos, tx: tx, cache: cache}
}

func (u *DocumentUseCase) Create(ctx context.Context, companyID uint, in CreateDocumentInput) (entities.Document, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}
	if in.Type == "" {
		in.Type = entities.DocumentTypeEstimate
	}

	doc := documentFromHeader(in.ID, companyID, in.Header)
	doc.Type = in.Type

	var created entities.Document
	err := u.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = u.repo.Create(ctx, doc)
		if err != nil {
			return err
		}
		if err := u.repo.ReplacePhotos(ctx, created.ID, in.Photos); err != nil {
			return err
		}
		return u.repo.ReplaceLineItems(ctx, created.ID, companyID, buildLineItems(created.ID, companyID, in.Items))
	})
	if err != nil {
		return entities.Document{}, err
	}

	u.cache.Invalidate(companyID)
	return created, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, companyID uint, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	doc, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Document{}, err
	}
	if doc.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return doc, nil
}

func (u *DocumentUseCase) List(ctx context.Context, companyID uint) ([]entities.Document, error) {
	if docs, ok := u.cache.Get(companyID); ok {
		return docs, nil
	}
	docs, err := u.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	u.cache.Set(companyID, docs)
	return docs, nil
}

// Update replaces the document wholesale: header fields are overwritten
// unconditionally, then photos, line items (with materials and tags) and
// tasks are brought to exactly the incoming set. All row writes run in one
// transaction, so a failure part-way leaves no mixed state.
func (u *DocumentUseCase) Update(ctx context.Context, companyID uint, in UpdateDocumentInput) error {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return ErrInvalidDocumentID
	}

	existing, err := u.repo.GetByID(ctx, companyID, in.ID)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrDocumentNotFound
	}

	var staleFiles []string
	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.repo.UpdateHeader(ctx, documentFromHeader(in.ID, companyID, in.Header)); err != nil {
			return err
		}

		previous, err := u.repo.ListPhotos(ctx, in.ID)
		if err != nil {
			return err
		}
		kept := make(map[string]struct{}, len(in.Photos))
		for _, name := range in.Photos {
			kept[name] = struct{}{}
		}
		for _, p := range previous {
			if _, ok := kept[p.Photo]; ok {
				continue
			}
			staleFiles = append(staleFiles, p.Photo)
		}

		if err := u.repo.ReplacePhotos(ctx, in.ID, in.Photos); err != nil {
			return err
		}
		if err := u.repo.ReplaceLineItems(ctx, in.ID, companyID, buildLineItems(in.ID, companyID, in.Items)); err != nil {
			return err
		}

		for _, t := range in.Tasks {
			title, description := splitTaskText(t.Text)
			if t.ID == nil {
				_, err := u.tasks.Create(ctx, entities.Task{
					CompanyID:   companyID,
					Title:       title,
					Description: description,
					Priority:    entities.TaskPriorityMedium,
					DocumentID:  &in.ID,
				})
				if err != nil {
					return err
				}
				continue
			}
			if err := u.tasks.UpdateTitleDescription(ctx, *t.ID, title, description); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Backing files of dropped photos are removed only after the transaction
	// committed; names resent in the update keep their files. Removal failures
	// don't fail the update, files absent on disk are skipped.
	g := new(errgroup.Group)
	for _, name := range staleFiles {
		name := name
		g.Go(func() error { return u.photos.Remove(name) })
	}
	if err := g.Wait(); err != nil {
		log := logger.WithComponent("document-usecase")
		log.Warn().Err(err).Str("document_id", in.ID).Msg("stale photo cleanup incomplete")
	}

	u.cache.Invalidate(companyID)
	return nil
}

// Convert toggles the document between Estimate and Invoice and commits its
// inventory impact: one ledger entry and one stock decrement per distinct
// catalog product referenced by the document's materials. The type flip and
// every ledger/decrement pair commit in the same transaction.
func (u *DocumentUseCase) Convert(ctx context.Context, companyID uint, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	doc, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.Document{}, err
	}
	if doc.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}

	newType := doc.Type.Toggle()
	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := u.repo.SetType(ctx, id, newType); err != nil {
			return err
		}

		materials, err := u.inventory.ListDocumentMaterials(ctx, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, pq := range aggregateProductQuantities(materials) {
			// Price and vendor come from the first material row that
			// referenced this product, not an average over all of them.
			first := firstMaterialForProduct(materials, pq.ProductID)

			h := entities.InventoryProductHistory{
				ProductID:  pq.ProductID,
				Date:       now,
				Quantity:   pq.Quantity,
				Type:       entities.ProductHistorySale,
				DocumentID: &id,
			}
			if first != nil {
				h.Price = first.Sell
				h.VendorID = first.VendorID
			}
			if _, err := u.inventory.CreateHistory(ctx, h); err != nil {
				return err
			}
			if err := u.inventory.DecrementQuantity(ctx, pq.ProductID, pq.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Document{}, err
	}

	u.cache.Invalidate(companyID)
	doc.Type = newType
	return doc, nil
}

// UploadPhoto stores an uploaded photo file under a fresh random name and
// returns that name. The document references it once the client includes the
// name in its next update payload; until then the file is simply parked.
func (u *DocumentUseCase) UploadPhoto(_ context.Context, ext string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyPhotoUpload
	}
	name := uuid.NewString() + strings.ToLower(ext)
	if err := u.photos.Save(name, data); err != nil {
		return "", err
	}
	return name, nil
}

type productQuantity struct {
	ProductID uint
	Quantity  float64
}

// aggregateProductQuantities folds materials into one {productID, quantity}
// pair per distinct product, in first-seen order. Materials without a
// product link are skipped; a nil quantity contributes 0.
func aggregateProductQuantities(materials []entities.Material) []productQuantity {
	var out []productQuantity
	index := make(map[uint]int)
	for _, m := range materials {
		if m.ProductID == nil {
			continue
		}
		qty := 0.0
		if m.Quantity != nil {
			qty = *m.Quantity
		}
		if i, ok := index[*m.ProductID]; ok {
			out[i].Quantity += qty
			continue
		}
		index[*m.ProductID] = len(out)
		out = append(out, productQuantity{ProductID: *m.ProductID, Quantity: qty})
	}
	return out
}

func firstMaterialForProduct(materials []entities.Material, productID uint) *entities.Material {
	for i := range materials {
		if materials[i].ProductID != nil && *materials[i].ProductID == productID {
			return &materials[i]
		}
	}
	return nil
}

// splitTaskText splits on the first colon only: "Fix brakes:replace pads"
// becomes ("Fix brakes", "replace pads"); text without a colon yields an
// empty description.
func splitTaskText(text string) (title, description string) {
	title, description, _ = strings.Cut(text, ":")
	return title, description
}

func documentFromHeader(id string, companyID uint, h DocumentHeader) entities.Document {
	return entities.Document{
		ID:               id,
		CompanyID:        companyID,
		Title:            h.Title,
		ClientID:         h.ClientID,
		VehicleID:        h.VehicleID,
		StatusID:         h.StatusID,
		Subtotal:         h.Subtotal,
		Discount:         h.Discount,
		Tax:              h.Tax,
		Deposit:          h.Deposit,
		DepositNotes:     h.DepositNotes,
		DepositMethod:    h.DepositMethod,
		GrandTotal:       h.GrandTotal,
		Due:              h.Due,
		InternalNotes:    h.InternalNotes,
		Terms:            h.Terms,
		Policy:           h.Policy,
		CustomerNotes:    h.CustomerNotes,
		CustomerComments: h.CustomerComments,
	}
}

func buildLineItems(documentID string, companyID uint, items []LineItemInput) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, in := range items {
		item := entities.LineItem{
			DocumentID: documentID,
			ServiceID:  in.ServiceID,
			LaborID:    in.LaborID,
		}
		for _, m := range in.Materials {
			item.Materials = append(item.Materials, entities.Material{
				DocumentID: documentID,
				CompanyID:  companyID,
				Name:       m.Name,
				VendorID:   m.VendorID,
				CategoryID: m.CategoryID,
				ProductID:  m.ProductID,
				Notes:      m.Notes,
				Quantity:   m.Quantity,
				Cost:       m.Cost,
				Sell:       m.Sell,
				Discount:   m.Discount,
			})
		}
		for _, tagID := range in.TagIDs {
			item.Tags = append(item.Tags, entities.ItemTag{TagID: tagID})
		}
		out = append(out, item)
	}
	return out
}
