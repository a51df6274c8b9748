package service

import (
	"context"
	"sort"

	"catalog/internal/model"
	"catalog/internal/repository"

	"github.com/google/uuid"
)

// ── In-memory Store stub ─────────────────────────────────────────────────────
// Rows are stored by value so callers cannot mutate them behind the store's
// back. Do snapshots the tables and restores them when fn fails, which is
// enough to observe all-or-nothing commits.

type memData struct {
	suppliers map[uuid.UUID]model.Supplier
	addresses map[uuid.UUID]model.Address
	products  map[uuid.UUID]model.Product

	// failCommit makes the next Do fail after fn succeeded.
	failCommit error
	commits    int
}

func (d *memData) clone() memData {
	cp := memData{
		suppliers: make(map[uuid.UUID]model.Supplier, len(d.suppliers)),
		addresses: make(map[uuid.UUID]model.Address, len(d.addresses)),
		products:  make(map[uuid.UUID]model.Product, len(d.products)),
	}
	for k, v := range d.suppliers {
		cp.suppliers[k] = v
	}
	for k, v := range d.addresses {
		cp.addresses[k] = v
	}
	for k, v := range d.products {
		cp.products[k] = v
	}
	return cp
}

type memStore struct{ data *memData }

func newMemStore() *memStore {
	return &memStore{data: &memData{
		suppliers: make(map[uuid.UUID]model.Supplier),
		addresses: make(map[uuid.UUID]model.Address),
		products:  make(map[uuid.UUID]model.Product),
	}}
}

func (s *memStore) Suppliers() repository.SupplierRepository { return &memSupplierRepo{s.data} }
func (s *memStore) Products() repository.ProductRepository   { return &memProductRepo{s.data} }
func (s *memStore) Addresses() repository.AddressRepository  { return &memAddressRepo{s.data} }

func (s *memStore) Do(ctx context.Context, fn func(uow repository.Store) error) error {
	snapshot := s.data.clone()
	err := fn(s)
	if err == nil {
		err = ctx.Err()
	}
	if err == nil && s.data.failCommit != nil {
		err = s.data.failCommit
		s.data.failCommit = nil
	}
	if err != nil {
		s.data.suppliers = snapshot.suppliers
		s.data.addresses = snapshot.addresses
		s.data.products = snapshot.products
		return err
	}
	s.data.commits++
	return nil
}

var _ repository.Store = (*memStore)(nil)

// ── Suppliers ────────────────────────────────────────────────────────────────

type memSupplierRepo struct{ d *memData }

func (r *memSupplierRepo) Add(_ context.Context, s *model.Supplier) error {
	if _, ok := r.d.suppliers[s.ID]; ok {
		return repository.ErrDuplicateKey
	}
	for _, existing := range r.d.suppliers {
		if existing.Document == s.Document {
			return repository.ErrDuplicateKey
		}
	}
	row := *s
	row.Address, row.Products = nil, nil
	r.d.suppliers[s.ID] = row
	return nil
}

func (r *memSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	if _, ok := r.d.suppliers[s.ID]; !ok {
		return repository.ErrNotFound
	}
	row := *s
	row.Address, row.Products = nil, nil
	r.d.suppliers[s.ID] = row
	return nil
}

func (r *memSupplierRepo) Remove(_ context.Context, id uuid.UUID) error {
	if _, ok := r.d.suppliers[id]; !ok {
		return repository.ErrNotFound
	}
	for _, a := range r.d.addresses {
		if a.SupplierID == id {
			return repository.ErrConstraintViolation
		}
	}
	for _, p := range r.d.products {
		if p.SupplierID == id {
			return repository.ErrConstraintViolation
		}
	}
	delete(r.d.suppliers, id)
	return nil
}

func (r *memSupplierRepo) GetAll(_ context.Context, _ ...repository.Sort) ([]*model.Supplier, error) {
	out := make([]*model.Supplier, 0, len(r.d.suppliers))
	for _, s := range r.d.suppliers {
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memSupplierRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.d.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *memSupplierRepo) GetWithAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, _ := r.GetByID(ctx, id)
	if s == nil {
		return nil, nil
	}
	s.Address, _ = (&memAddressRepo{r.d}).GetBySupplier(ctx, id)
	return s, nil
}

func (r *memSupplierRepo) GetWithProductsAndAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, _ := r.GetWithAddress(ctx, id)
	if s == nil {
		return nil, nil
	}
	products, _ := (&memProductRepo{r.d}).GetBySupplier(ctx, id)
	for _, p := range products {
		s.Products = append(s.Products, *p)
	}
	return s, nil
}

func (r *memSupplierRepo) GetByDocument(_ context.Context, document string) (*model.Supplier, error) {
	for _, s := range r.d.suppliers {
		if s.Document == document {
			return &s, nil
		}
	}
	return nil, nil
}

// ── Addresses ────────────────────────────────────────────────────────────────

type memAddressRepo struct{ d *memData }

func (r *memAddressRepo) Add(_ context.Context, a *model.Address) error {
	if _, ok := r.d.suppliers[a.SupplierID]; !ok {
		return repository.ErrConstraintViolation
	}
	if _, ok := r.d.addresses[a.ID]; ok {
		return repository.ErrDuplicateKey
	}
	r.d.addresses[a.ID] = *a
	return nil
}

func (r *memAddressRepo) Update(_ context.Context, a *model.Address) error {
	if _, ok := r.d.addresses[a.ID]; !ok {
		return repository.ErrNotFound
	}
	r.d.addresses[a.ID] = *a
	return nil
}

func (r *memAddressRepo) Remove(_ context.Context, id uuid.UUID) error {
	if _, ok := r.d.addresses[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.addresses, id)
	return nil
}

func (r *memAddressRepo) GetAll(_ context.Context, _ ...repository.Sort) ([]*model.Address, error) {
	out := make([]*model.Address, 0, len(r.d.addresses))
	for _, a := range r.d.addresses {
		a := a
		out = append(out, &a)
	}
	return out, nil
}

func (r *memAddressRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Address, error) {
	a, ok := r.d.addresses[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *memAddressRepo) GetBySupplier(_ context.Context, supplierID uuid.UUID) (*model.Address, error) {
	for _, a := range r.d.addresses {
		if a.SupplierID == supplierID {
			return &a, nil
		}
	}
	return nil, nil
}

// ── Products ─────────────────────────────────────────────────────────────────

type memProductRepo struct{ d *memData }

func (r *memProductRepo) Add(_ context.Context, p *model.Product) error {
	if _, ok := r.d.suppliers[p.SupplierID]; !ok {
		return repository.ErrConstraintViolation
	}
	if _, ok := r.d.products[p.ID]; ok {
		return repository.ErrDuplicateKey
	}
	row := *p
	row.Supplier = nil
	r.d.products[p.ID] = row
	return nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.d.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	row := *p
	row.Supplier = nil
	r.d.products[p.ID] = row
	return nil
}

func (r *memProductRepo) Remove(_ context.Context, id uuid.UUID) error {
	if _, ok := r.d.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.d.products, id)
	return nil
}

func (r *memProductRepo) GetAll(_ context.Context, _ ...repository.Sort) ([]*model.Product, error) {
	out := make([]*model.Product, 0, len(r.d.products))
	for _, p := range r.d.products {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.d.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*model.Product, error) {
	all, _ := r.GetAll(ctx)
	var out []*model.Product
	for _, p := range all {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) GetAllWithSupplier(ctx context.Context) ([]*model.Product, error) {
	all, _ := r.GetAll(ctx)
	for _, p := range all {
		if s, ok := r.d.suppliers[p.SupplierID]; ok {
			p.Supplier = &s
		}
	}
	return all, nil
}

func (r *memProductRepo) GetWithSupplier(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.d.products[id]
	if !ok {
		return nil, nil
	}
	if s, ok := r.d.suppliers[p.SupplierID]; ok {
		p.Supplier = &s
	}
	return &p, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func seedSupplier(store *memStore, name, document string) *model.Supplier {
	s := model.NewSupplier(name, document, model.SupplierCompany)
	store.data.suppliers[s.ID] = *s
	return s
}
