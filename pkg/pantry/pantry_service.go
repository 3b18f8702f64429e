package pantry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/entities"
	"pantry-tracker-api/internal/utils"
	"pantry-tracker-api/internal/utils/mailing"
	"pantry-tracker-api/internal/utils/storage"
	"pantry-tracker-api/pkg/calorie"
	"pantry-tracker-api/pkg/category"
	"pantry-tracker-api/pkg/shelflife"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error
		DeletePantryItem(ctx context.Context, id string, userID string) error
		GetPantryItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.PantryItemResponse, int64, error)
		GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error)

		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		GetReceiptScan(ctx context.Context, scanID string, userID string) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error

		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)

		GenerateShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItemResponse, error)
		AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListItemResponse, error)
		TogglePurchased(ctx context.Context, itemID string, userID string) error
		DeleteShoppingItem(ctx context.Context, itemID string, userID string) error

		SendExpiryDigest(ctx context.Context, userID string, email string) error
	}

	pantryService struct {
		pantryRepository PantryRepository
		s3               storage.AwsS3
		estimator        shelflife.Estimator
		sendMail         func(toEmail, subject, body string) error
		now              func() time.Time
	}
)

func NewPantryService(pantryRepository PantryRepository, s3 storage.AwsS3, estimator shelflife.Estimator) PantryService {
	return &pantryService{
		pantryRepository: pantryRepository,
		s3:               s3,
		estimator:        estimator,
		sendMail:         mailing.SendMail,
		now:              time.Now,
	}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	if req.Quantity <= 0 {
		return domain.PantryItemResponse{}, domain.ErrInvalidQuantity
	}

	itemCategory := req.Category
	if itemCategory == "" {
		itemCategory = category.Categorize(req.Name)
	}

	expiryDate, err := s.resolveExpiryDate(req.ExpiryDate, req.Name, req.IsRefrigerated)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	item := &entities.PantryItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		UnitMeasure:   req.UnitMeasure,
		Category:      itemCategory,
		ExpiryDate:    expiryDate,
		IsPackaged:    req.IsPackaged,
		Status:        shelflife.ExpiryStatusAt(s.now(), expiryDate),
		AddedManually: true,
	}

	if result := calorie.Lookup(req.Name, req.Quantity, req.UnitMeasure); result != nil {
		item.CaloriesEstimate = result.Calories
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return s.toResponse(item), nil
}

// resolveExpiryDate takes the caller's ISO date when present and otherwise
// predicts one from the item name.
func (s *pantryService) resolveExpiryDate(isoDate, itemName string, isRefrigerated bool) (time.Time, error) {
	if isoDate != "" {
		expiryDate, err := time.Parse("2006-01-02", isoDate)
		if err != nil {
			return time.Time{}, domain.ErrInvalidExpiryDate
		}
		return expiryDate, nil
	}

	predicted := s.estimator.PredictDate(itemName, isRefrigerated)
	expiryDate, err := time.Parse("2006-01-02", predicted)
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return expiryDate, nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
		if req.Category == "" {
			item.Category = category.Categorize(req.Name)
		}
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.UnitMeasure != "" {
		item.UnitMeasure = req.UnitMeasure
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
	}
	item.IsPackaged = req.IsPackaged
	item.Status = shelflife.ExpiryStatusAt(s.now(), item.ExpiryDate)

	if result := calorie.Lookup(item.Name, item.Quantity, item.UnitMeasure); result != nil {
		item.CaloriesEstimate = result.Calories
	}

	return s.pantryRepository.UpdatePantryItem(ctx, item)
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) GetPantryItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.PantryItemResponse, int64, error) {
	items, count, err := s.pantryRepository.GetPantryItems(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.PantryItemResponse
	for _, item := range items {
		response = append(response, s.toResponse(item))
	}

	return response, count, nil
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(item), nil
}

func (s *pantryService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error) {
	item, err := s.ownedItem(ctx, req.PantryItemID, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("pantry-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL); existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "pantry-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return "", err
	}
	return item.ImageURL, nil
}

func (s *pantryService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	scan := &entities.ReceiptScan{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   "Pending",
	}

	if err := s.pantryRepository.CreateReceiptScan(ctx, scan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	go s.processReceiptScan(scan, req.ReceiptImage)

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   scan.Status,
	}, nil
}

// processReceiptScan runs off the request goroutine: the upload response has
// already been sent, and the scan record carries the outcome.
func (s *pantryService) processReceiptScan(scan *entities.ReceiptScan, receiptImage *multipart.FileHeader) {
	fail := func(reason string) {
		scan.Status = "Failed"
		scan.OcrResults = reason
		if err := s.pantryRepository.UpdateReceiptScan(context.Background(), scan); err != nil {
			log.Printf("error updating receipt scan %s: %v", scan.ID, err)
		}
	}

	aiModelURL := utils.GetConfig("AI_MODEL_URL")
	if aiModelURL == "" {
		fail("Error: AI model URL not configured")
		return
	}

	file, err := receiptImage.Open()
	if err != nil {
		fail(fmt.Sprintf("Error opening file: %s", err.Error()))
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		fail(fmt.Sprintf("Error reading file: %s", err.Error()))
		return
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", receiptImage.Filename)
	if err != nil {
		fail(fmt.Sprintf("Error creating form file: %s", err.Error()))
		return
	}
	if _, err = part.Write(fileBytes); err != nil {
		fail(fmt.Sprintf("Error writing form file: %s", err.Error()))
		return
	}
	if err = writer.Close(); err != nil {
		fail(fmt.Sprintf("Error closing writer: %s", err.Error()))
		return
	}

	httpReq, err := http.NewRequest("POST", aiModelURL, body)
	if err != nil {
		fail(fmt.Sprintf("Error creating request: %s", err.Error()))
		return
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		fail(fmt.Sprintf("Error sending request to OCR model: %s", err.Error()))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		fail(fmt.Sprintf("OCR model error: %s - %s", resp.Status, string(bodyBytes)))
		return
	}

	var aiResponse struct {
		Success bool `json:"success"`
		Items   []struct {
			Name        string  `json:"name"`
			Quantity    float64 `json:"quantity"`
			UnitMeasure string  `json:"unit_measure"`
			ExpiryDate  string  `json:"expiry_date"`
			IsPackaged  bool    `json:"is_packaged"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&aiResponse); err != nil {
		fail(fmt.Sprintf("Error parsing OCR response: %s", err.Error()))
		return
	}
	if !aiResponse.Success || len(aiResponse.Items) == 0 {
		fail("OCR model couldn't extract any items from receipt")
		return
	}

	resultsJSON, _ := json.Marshal(aiResponse.Items)
	scan.Status = "Processed"
	scan.OcrResults = string(resultsJSON)
	if err := s.pantryRepository.UpdateReceiptScan(context.Background(), scan); err != nil {
		log.Printf("error updating receipt scan %s: %v", scan.ID, err)
	}
}

func (s *pantryService) GetReceiptScan(ctx context.Context, scanID string, userID string) (domain.ReceiptScanResponse, error) {
	scan, err := s.pantryRepository.GetReceiptScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptScanResponse{}, domain.ErrInvalidReceiptScan
		}
		return domain.ReceiptScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ReceiptScanResponse{}, domain.ErrUnauthorizedAccess
	}

	return domain.ReceiptScanResponse{
		ScanID:     scan.ID.String(),
		ImageURL:   scan.ImageURL,
		Status:     scan.Status,
		OcrResults: scan.OcrResults,
	}, nil
}

func (s *pantryService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error {
	scan, err := s.pantryRepository.GetReceiptScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidReceiptScan
		}
		return err
	}

	if scan.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	scanIDStr := scan.ID.String()
	for _, scanned := range req.Items {
		if scanned.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}

		expiryDate, err := s.resolveExpiryDate(scanned.ExpiryDate, scanned.Name, true)
		if err != nil {
			return err
		}

		item := &entities.PantryItem{
			ID:            uuid.New(),
			UserID:        userUUID,
			Name:          scanned.Name,
			Quantity:      scanned.Quantity,
			UnitMeasure:   scanned.UnitMeasure,
			Category:      category.Categorize(scanned.Name),
			ExpiryDate:    expiryDate,
			IsPackaged:    scanned.IsPackaged,
			Status:        shelflife.ExpiryStatusAt(s.now(), expiryDate),
			AddedManually: false,
			ReceiptScanID: &scanIDStr,
		}

		if result := calorie.Lookup(scanned.Name, scanned.Quantity, scanned.UnitMeasure); result != nil {
			item.CaloriesEstimate = result.Calories
		}

		if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
			return err
		}
	}

	scan.Status = "Completed"
	return s.pantryRepository.UpdateReceiptScan(ctx, scan)
}

func (s *pantryService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	items, err := s.pantryRepository.GetAllByUser(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	now := s.now()
	stats := domain.DashboardStatsResponse{TotalItems: len(items)}
	for _, item := range items {
		switch shelflife.ExpiryStatusAt(now, item.ExpiryDate) {
		case shelflife.StatusExpired:
			stats.ExpiredItems++
		case shelflife.StatusExpiringSoon:
			stats.ExpiringSoonItems++
		case shelflife.StatusWarning:
			stats.WarningItems++
		default:
			stats.FreshItems++
		}
	}

	return stats, nil
}

// GenerateShoppingList appends every expired or expiring-soon pantry item
// that is not already on the list, then returns the whole list.
func (s *pantryService) GenerateShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.pantryRepository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, item := range items {
		status := shelflife.ExpiryStatusAt(now, item.ExpiryDate)
		if status != shelflife.StatusExpired && status != shelflife.StatusExpiringSoon {
			continue
		}

		itemID := item.ID.String()
		exists, err := s.pantryRepository.HasShoppingItemForPantryItem(ctx, userID, itemID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		listItem := &entities.ShoppingListItem{
			ID:           uuid.New(),
			UserID:       userUUID,
			Name:         item.Name,
			Quantity:     item.Quantity,
			UnitMeasure:  item.UnitMeasure,
			Category:     item.Category,
			Reason:       status,
			PantryItemID: &itemID,
		}
		if err := s.pantryRepository.CreateShoppingItem(ctx, listItem); err != nil {
			return nil, err
		}
	}

	listItems, err := s.pantryRepository.GetShoppingItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.ShoppingListItemResponse
	for _, listItem := range listItems {
		response = append(response, domain.ShoppingListItemResponse{
			ID:          listItem.ID.String(),
			Name:        listItem.Name,
			Quantity:    listItem.Quantity,
			UnitMeasure: listItem.UnitMeasure,
			Category:    listItem.Category,
			Reason:      listItem.Reason,
			IsPurchased: listItem.IsPurchased,
		})
	}
	return response, nil
}

func (s *pantryService) AddShoppingItem(ctx context.Context, req domain.AddShoppingItemRequest, userID string) (domain.ShoppingListItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ShoppingListItemResponse{}, domain.ErrParseUUID
	}

	listItem := &entities.ShoppingListItem{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		UnitMeasure: req.UnitMeasure,
		Category:    category.Categorize(req.Name),
		Reason:      "manual",
	}

	if err := s.pantryRepository.CreateShoppingItem(ctx, listItem); err != nil {
		return domain.ShoppingListItemResponse{}, err
	}

	return domain.ShoppingListItemResponse{
		ID:          listItem.ID.String(),
		Name:        listItem.Name,
		Quantity:    listItem.Quantity,
		UnitMeasure: listItem.UnitMeasure,
		Category:    listItem.Category,
		Reason:      listItem.Reason,
		IsPurchased: listItem.IsPurchased,
	}, nil
}

func (s *pantryService) TogglePurchased(ctx context.Context, itemID string, userID string) error {
	listItem, err := s.pantryRepository.GetShoppingItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if listItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	listItem.IsPurchased = !listItem.IsPurchased
	return s.pantryRepository.UpdateShoppingItem(ctx, listItem)
}

func (s *pantryService) DeleteShoppingItem(ctx context.Context, itemID string, userID string) error {
	listItem, err := s.pantryRepository.GetShoppingItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}

	if listItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	return s.pantryRepository.DeleteShoppingItem(ctx, itemID)
}

// SendExpiryDigest mails the user a summary of everything expired or close
// to it. Nothing is sent when the pantry is in good shape.
func (s *pantryService) SendExpiryDigest(ctx context.Context, userID string, email string) error {
	items, err := s.pantryRepository.GetAllByUser(ctx, userID)
	if err != nil {
		return err
	}

	now := s.now()
	var lines []string
	for _, item := range items {
		status := shelflife.ExpiryStatusAt(now, item.ExpiryDate)
		if status == shelflife.StatusFresh {
			continue
		}
		lines = append(lines, fmt.Sprintf("<li>%s - %s (%s)</li>",
			item.Name, shelflife.FormatExpirationTextAt(now, item.ExpiryDate), status))
	}

	if len(lines) == 0 {
		return nil
	}

	body := fmt.Sprintf(
		"<p>Some items in your pantry need attention:</p><ul>%s</ul><p>Open the app to update your pantry or build a shopping list.</p>",
		strings.Join(lines, ""))

	return s.sendMail(email, "Your pantry expiry digest", body)
}

// ownedItem fetches an item and enforces ownership.
func (s *pantryService) ownedItem(ctx context.Context, id string, userID string) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func (s *pantryService) toResponse(item *entities.PantryItem) domain.PantryItemResponse {
	now := s.now()
	return domain.PantryItemResponse{
		ID:               item.ID.String(),
		Name:             item.Name,
		Quantity:         item.Quantity,
		UnitMeasure:      item.UnitMeasure,
		Category:         item.Category,
		ExpiryDate:       item.ExpiryDate,
		ExpiryText:       shelflife.FormatExpirationTextAt(now, item.ExpiryDate),
		IsPackaged:       item.IsPackaged,
		Status:           shelflife.ExpiryStatusAt(now, item.ExpiryDate),
		CaloriesEstimate: item.CaloriesEstimate,
		ImageURL:         item.ImageURL,
		CreatedAt:        item.CreatedAt,
	}
}
