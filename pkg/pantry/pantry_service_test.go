package pantry

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/entities"
	"pantry-tracker-api/pkg/shelflife"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePantryRepository struct {
	mu            sync.Mutex
	items         map[string]*entities.PantryItem
	scans         map[string]*entities.ReceiptScan
	shoppingItems map[string]*entities.ShoppingListItem
}

func newFakePantryRepository() *fakePantryRepository {
	return &fakePantryRepository{
		items:         make(map[string]*entities.PantryItem),
		scans:         make(map[string]*entities.ReceiptScan),
		shoppingItems: make(map[string]*entities.ShoppingListItem),
	}
}

func (f *fakePantryRepository) AddPantryItem(_ context.Context, item *entities.PantryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakePantryRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakePantryRepository) UpdatePantryItem(_ context.Context, item *entities.PantryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *item
	f.items[item.ID.String()] = &copied
	return nil
}

func (f *fakePantryRepository) DeletePantryItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakePantryRepository) GetPantryItems(_ context.Context, userID string, status string, page, limit int) ([]*entities.PantryItem, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []*entities.PantryItem
	for _, item := range f.items {
		if item.UserID.String() != userID {
			continue
		}
		if status != "all" && status != "" && item.Status != status {
			continue
		}
		copied := *item
		items = append(items, &copied)
	}
	return items, int64(len(items)), nil
}

func (f *fakePantryRepository) GetAllByUser(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []*entities.PantryItem
	for _, item := range f.items {
		if item.UserID.String() == userID {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (f *fakePantryRepository) CreateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *scan
	f.scans[scan.ID.String()] = &copied
	return nil
}

func (f *fakePantryRepository) GetReceiptScanByID(_ context.Context, id string) (*entities.ReceiptScan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	scan, ok := f.scans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *scan
	return &copied, nil
}

func (f *fakePantryRepository) UpdateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *scan
	f.scans[scan.ID.String()] = &copied
	return nil
}

func (f *fakePantryRepository) CreateShoppingItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *item
	f.shoppingItems[item.ID.String()] = &copied
	return nil
}

func (f *fakePantryRepository) GetShoppingItems(_ context.Context, userID string) ([]*entities.ShoppingListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []*entities.ShoppingListItem
	for _, item := range f.shoppingItems {
		if item.UserID.String() == userID {
			copied := *item
			items = append(items, &copied)
		}
	}
	return items, nil
}

func (f *fakePantryRepository) GetShoppingItemByID(_ context.Context, id string) (*entities.ShoppingListItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.shoppingItems[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakePantryRepository) UpdateShoppingItem(_ context.Context, item *entities.ShoppingListItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *item
	f.shoppingItems[item.ID.String()] = &copied
	return nil
}

func (f *fakePantryRepository) DeleteShoppingItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.shoppingItems, id)
	return nil
}

func (f *fakePantryRepository) HasShoppingItemForPantryItem(_ context.Context, userID string, pantryItemID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.shoppingItems {
		if item.UserID.String() == userID &&
			item.PantryItemID != nil && *item.PantryItemID == pantryItemID &&
			!item.IsPurchased {
			return true, nil
		}
	}
	return false, nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(string) error { return nil }

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.s3.region.amazonaws.com/"
	if len(link) <= len(prefix) {
		return ""
	}
	return link[len(prefix):]
}

func newTestPantryService(repo PantryRepository) *pantryService {
	return &pantryService{
		pantryRepository: repo,
		s3:               fakeS3{},
		estimator:        shelflife.NewEstimator(""),
		sendMail:         func(string, string, string) error { return nil },
		now:              time.Now,
	}
}

func TestAddPantryItemFillsDerivedFields(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	userID := uuid.NewString()

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name:           "Milk",
		Quantity:       1,
		UnitMeasure:    "liter",
		IsRefrigerated: true,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "dairy", res.Category)
	// Milk keeps 5 days, so the predicted date is 5 days out and the status
	// lands in the warning band.
	expected := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	assert.Equal(t, expected, res.ExpiryDate.Format("2006-01-02"))
	assert.Equal(t, shelflife.StatusWarning, res.Status)
	assert.Equal(t, 420, res.CaloriesEstimate)
	assert.NotEmpty(t, res.ExpiryText)
}

func TestAddPantryItemHonorsExplicitFields(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	userID := uuid.NewString()

	expiry := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name:        "Mystery Jar",
		Quantity:    2,
		UnitMeasure: "pieces",
		Category:    "condiments",
		ExpiryDate:  expiry,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "condiments", res.Category)
	assert.Equal(t, expiry, res.ExpiryDate.Format("2006-01-02"))
	assert.Equal(t, shelflife.StatusFresh, res.Status)
	// Unknown foods simply have no calorie estimate.
	assert.Zero(t, res.CaloriesEstimate)
}

func TestAddPantryItemRejectsBadInput(t *testing.T) {
	service := newTestPantryService(newFakePantryRepository())
	userID := uuid.NewString()

	_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 0, UnitMeasure: "liter",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 1, UnitMeasure: "liter", ExpiryDate: "31/12/2026",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 1, UnitMeasure: "liter",
	}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdatePantryItemEnforcesOwnership(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	owner := uuid.NewString()

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Eggs", Quantity: 12, UnitMeasure: "pieces",
	}, owner)
	require.NoError(t, err)

	err = service.UpdatePantryItem(context.Background(), res.ID, domain.UpdatePantryItemRequest{
		Quantity: 6,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	err = service.UpdatePantryItem(context.Background(), uuid.NewString(), domain.UpdatePantryItemRequest{
		Quantity: 6,
	}, owner)
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)

	require.NoError(t, service.UpdatePantryItem(context.Background(), res.ID, domain.UpdatePantryItemRequest{
		Quantity: 6,
	}, owner))

	updated, err := service.GetPantryItemByID(context.Background(), res.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, float64(6), updated.Quantity)
}

func TestUpdatePantryItemRecategorizesOnRename(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	owner := uuid.NewString()

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Grapes", Quantity: 1, UnitMeasure: "kg",
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, "fruits", res.Category)

	require.NoError(t, service.UpdatePantryItem(context.Background(), res.ID, domain.UpdatePantryItemRequest{
		Name: "Chicken Breast",
	}, owner))

	updated, err := service.GetPantryItemByID(context.Background(), res.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "meat", updated.Category)
}

func TestGetDashboardStats(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	owner := uuid.NewString()

	addWithExpiry := func(name string, daysOut int) {
		expiry := time.Now().AddDate(0, 0, daysOut).Format("2006-01-02")
		_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
			Name: name, Quantity: 1, UnitMeasure: "pieces", ExpiryDate: expiry,
		}, owner)
		require.NoError(t, err)
	}

	addWithExpiry("Yogurt", -1)     // expired
	addWithExpiry("Milk", 2)        // expiring soon
	addWithExpiry("Cheddar", 5)     // warning
	addWithExpiry("Canned Soup", 60) // fresh

	stats, err := service.GetDashboardStats(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Equal(t, 1, stats.ExpiringSoonItems)
	assert.Equal(t, 1, stats.WarningItems)
	assert.Equal(t, 1, stats.FreshItems)
}

func TestGenerateShoppingListIsIdempotent(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	owner := uuid.NewString()

	expired := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	fresh := time.Now().AddDate(0, 0, 60).Format("2006-01-02")

	_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Spinach", Quantity: 1, UnitMeasure: "pieces", ExpiryDate: expired,
	}, owner)
	require.NoError(t, err)
	_, err = service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Canned Beans", Quantity: 2, UnitMeasure: "pieces", ExpiryDate: fresh,
	}, owner)
	require.NoError(t, err)

	list, err := service.GenerateShoppingList(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Spinach", list[0].Name)
	assert.Equal(t, shelflife.StatusExpired, list[0].Reason)

	// Re-generating must not duplicate the entry.
	list, err = service.GenerateShoppingList(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestShoppingListManualItemsAndToggle(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	owner := uuid.NewString()

	added, err := service.AddShoppingItem(context.Background(), domain.AddShoppingItemRequest{
		Name: "Olive Oil", Quantity: 1, UnitMeasure: "bottle",
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, "manual", added.Reason)
	assert.False(t, added.IsPurchased)

	require.NoError(t, service.TogglePurchased(context.Background(), added.ID, owner))
	list, err := service.GenerateShoppingList(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsPurchased)

	assert.ErrorIs(t,
		service.TogglePurchased(context.Background(), added.ID, uuid.NewString()),
		domain.ErrUnauthorizedAccess)

	require.NoError(t, service.DeleteShoppingItem(context.Background(), added.ID, owner))
	list, err = service.GenerateShoppingList(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaveScannedItems(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	owner := uuid.NewString()
	ownerUUID, err := uuid.Parse(owner)
	require.NoError(t, err)

	scan := &entities.ReceiptScan{
		ID:     uuid.New(),
		UserID: ownerUUID,
		Status: "Processed",
	}
	require.NoError(t, repo.CreateReceiptScan(context.Background(), scan))

	err = service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items: []domain.ScannedItemRequest{
			{Name: "Banana", Quantity: 6, UnitMeasure: "pieces"},
			{Name: "Bread", Quantity: 1, UnitMeasure: "pieces", ExpiryDate: time.Now().AddDate(0, 0, 4).Format("2006-01-02")},
		},
	}, owner)
	require.NoError(t, err)

	items, _, err := service.GetPantryItems(context.Background(), owner, "all", 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	scanRes, err := service.GetReceiptScan(context.Background(), scan.ID.String(), owner)
	require.NoError(t, err)
	assert.Equal(t, "Completed", scanRes.Status)

	err = service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items:  []domain.ScannedItemRequest{{Name: "Banana", Quantity: 1, UnitMeasure: "pieces"}},
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestSendExpiryDigest(t *testing.T) {
	repo := newFakePantryRepository()
	service := newTestPantryService(repo)
	owner := uuid.NewString()

	var sentTo, sentBody string
	sent := 0
	service.sendMail = func(toEmail, subject, body string) error {
		sent++
		sentTo = toEmail
		sentBody = body
		return nil
	}

	// A fresh pantry sends nothing.
	require.NoError(t, service.SendExpiryDigest(context.Background(), owner, "user@example.com"))
	assert.Zero(t, sent)

	expired := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name: "Salmon", Quantity: 1, UnitMeasure: "pieces", ExpiryDate: expired,
	}, owner)
	require.NoError(t, err)

	require.NoError(t, service.SendExpiryDigest(context.Background(), owner, "user@example.com"))
	assert.Equal(t, 1, sent)
	assert.Equal(t, "user@example.com", sentTo)
	assert.Contains(t, sentBody, "Salmon")
}
