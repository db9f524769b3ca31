// Package schedulesvc - service lịch hoạt động định kỳ (Schedule).
package schedulesvc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "page_pilot/internal/api/base/models"
	basesvc "page_pilot/internal/api/base/service"
	scheduledto "page_pilot/internal/api/schedule/dto"
	models "page_pilot/internal/api/schedule/models"
	"page_pilot/internal/common"
	"page_pilot/internal/global"
)

// ScheduleService là cấu trúc chứa các phương thức liên quan đến lịch hoạt động
type ScheduleService struct {
	*basesvc.BaseServiceMongoImpl[models.Schedule]
}

// NewScheduleService tạo mới ScheduleService
func NewScheduleService() (*ScheduleService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Schedules)
	if !exist {
		return nil, fmt.Errorf("failed to get schedules collection: %v", common.ErrNotFound)
	}
	return &ScheduleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Schedule](collection),
	}, nil
}

// BuildSlotConflictFilter dựng filter kiểm tra trùng slot (dayOfWeek, timeOfDay)
// trong một danh sách. excludeID khác rỗng để loại chính slot đang sửa ra khỏi
// phép kiểm tra; điều kiện $ne nằm TRONG $elemMatch để áp lên từng phần tử.
func BuildSlotConflictFilter(userID primitive.ObjectID, listName, dayOfWeek, timeOfDay, excludeID string) bson.M {
	elem := bson.M{
		"dayOfWeek": dayOfWeek,
		"timeOfDay": timeOfDay,
	}
	if excludeID != "" {
		elem["id"] = bson.M{"$ne": excludeID}
	}
	return bson.M{
		"userId":   userID,
		listName:   bson.M{"$elemMatch": elem},
	}
}

// checkSlotConflict kiểm tra trùng slot phía store. Luôn query DB thay vì
// tin vào dữ liệu client gửi lên.
func (s *ScheduleService) checkSlotConflict(ctx context.Context, userID primitive.ObjectID, listName, dayOfWeek, timeOfDay, excludeID string) error {
	filter := BuildSlotConflictFilter(userID, listName, dayOfWeek, timeOfDay, excludeID)
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		return common.NewScheduleConflictError(listName, dayOfWeek, timeOfDay)
	}
	return nil
}

// slotKey định danh một slot theo cặp (dayOfWeek, timeOfDay).
type slotKey struct {
	day  string
	time string
}

// ValidateUniqueSlots kiểm tra không có hai slot trùng (dayOfWeek, timeOfDay)
// trong cùng một danh sách.
func ValidateUniqueSlots(listName string, slots [][2]string) error {
	seen := make(map[slotKey]struct{}, len(slots))
	for _, slot := range slots {
		key := slotKey{day: slot[0], time: slot[1]}
		if _, dup := seen[key]; dup {
			return common.NewScheduleConflictError(listName, slot[0], slot[1])
		}
		seen[key] = struct{}{}
	}
	return nil
}

// validateInputSlots kiểm tra trùng slot nội bộ của cả ba danh sách trong input.
func validateInputSlots(posts []scheduledto.ScheduledPostInput, analyses []scheduledto.ScheduledCompetitorAnalysisInput, dates []scheduledto.InteractionAnalysisDateInput) error {
	postSlots := make([][2]string, 0, len(posts))
	for _, p := range posts {
		postSlots = append(postSlots, [2]string{p.DayOfWeek, p.TimeOfDay})
	}
	if err := ValidateUniqueSlots(models.ListPosts, postSlots); err != nil {
		return err
	}

	analysisSlots := make([][2]string, 0, len(analyses))
	for _, a := range analyses {
		analysisSlots = append(analysisSlots, [2]string{a.DayOfWeek, a.TimeOfDay})
	}
	if err := ValidateUniqueSlots(models.ListCompetitorAnalysis, analysisSlots); err != nil {
		return err
	}

	dateSlots := make([][2]string, 0, len(dates))
	for _, d := range dates {
		dateSlots = append(dateSlots, [2]string{d.DayOfWeek, d.TimeOfDay})
	}
	return ValidateUniqueSlots(models.ListInteractionAnalysisDates, dateSlots)
}

// buildScheduleLists chuyển input DTO sang các danh sách model, gán UUID cho từng slot.
func buildScheduleLists(posts []scheduledto.ScheduledPostInput, analyses []scheduledto.ScheduledCompetitorAnalysisInput, dates []scheduledto.InteractionAnalysisDateInput) ([]models.ScheduledPost, []models.ScheduledCompetitorAnalysis, []models.InteractionAnalysisDate) {
	modelPosts := make([]models.ScheduledPost, 0, len(posts))
	for _, p := range posts {
		modelPosts = append(modelPosts, models.ScheduledPost{
			ID:        uuid.NewString(),
			DayOfWeek: p.DayOfWeek,
			TimeOfDay: p.TimeOfDay,
			Content:   p.Content,
			MediaURLs: p.MediaURLs,
		})
	}
	modelAnalyses := make([]models.ScheduledCompetitorAnalysis, 0, len(analyses))
	for _, a := range analyses {
		modelAnalyses = append(modelAnalyses, models.ScheduledCompetitorAnalysis{
			ID:            uuid.NewString(),
			DayOfWeek:     a.DayOfWeek,
			TimeOfDay:     a.TimeOfDay,
			AnalysisFocus: a.AnalysisFocus,
			Keywords:      a.Keywords,
		})
	}
	modelDates := make([]models.InteractionAnalysisDate, 0, len(dates))
	for _, d := range dates {
		modelDates = append(modelDates, models.InteractionAnalysisDate{
			ID:        uuid.NewString(),
			DayOfWeek: d.DayOfWeek,
			TimeOfDay: d.TimeOfDay,
		})
	}
	return modelPosts, modelAnalyses, modelDates
}

// Create tạo lịch mới cho một user. Trùng slot nội bộ input bị chặn trước khi
// ghi; unique index trên userId là cơ chế bảo vệ cuối cùng cho quan hệ 1:1.
func (s *ScheduleService) Create(ctx context.Context, input *scheduledto.ScheduleCreateInput) (*models.Schedule, error) {
	if err := validateInputSlots(input.Posts, input.CompetitorAnalysis, input.InteractionAnalysisDates); err != nil {
		return nil, err
	}

	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"userId": input.UserID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessConflict, "Lịch đã tồn tại cho user này", common.StatusConflict, nil)
	}

	posts, analyses, dates := buildScheduleLists(input.Posts, input.CompetitorAnalysis, input.InteractionAnalysisDates)
	schedule := models.Schedule{
		UserID:                   input.UserID,
		Posts:                    posts,
		CompetitorAnalysis:       analyses,
		InteractionAnalysisDates: dates,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, schedule)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": input.UserID.Hex(), "schedule_id": created.ID.Hex()}).Info("Create: Đã tạo lịch")
	return &created, nil
}

// GetByUserID lấy lịch của một user theo userId.
func (s *ScheduleService) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Schedule, error) {
	schedule, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// ReplaceByUserID thay thế toàn bộ ba danh sách slot của một user (PUT).
// Slot mới được gán UUID mới. Trả về ErrNotFound khi chưa có lịch (matched = 0);
// nội dung không đổi (modified = 0) vẫn là thành công.
func (s *ScheduleService) ReplaceByUserID(ctx context.Context, userID primitive.ObjectID, input *scheduledto.ScheduleReplaceInput) (*models.Schedule, error) {
	if err := validateInputSlots(input.Posts, input.CompetitorAnalysis, input.InteractionAnalysisDates); err != nil {
		return nil, err
	}

	posts, analyses, dates := buildScheduleLists(input.Posts, input.CompetitorAnalysis, input.InteractionAnalysisDates)
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			models.ListPosts:                    posts,
			models.ListCompetitorAnalysis:       analyses,
			models.ListInteractionAnalysisDates: dates,
		},
	}
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return nil, err
	}
	if counts.Matched == 0 {
		return nil, common.ErrNotFound
	}
	return s.GetByUserID(ctx, userID)
}

// DeleteByUserID xóa lịch của một user (dùng khi xóa tài khoản).
func (s *ScheduleService) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.BaseServiceMongoImpl.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// List liệt kê toàn bộ lịch với phân trang.
func (s *ScheduleService) List(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[models.Schedule], error) {
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, nil, page, limit, nil)
}

// pushSlot thêm một slot vào danh sách sau khi đã check trùng phía store.
func (s *ScheduleService) pushSlot(ctx context.Context, userID primitive.ObjectID, listName, dayOfWeek, timeOfDay string, item interface{}) error {
	if err := s.checkSlotConflict(ctx, userID, listName, dayOfWeek, timeOfDay, ""); err != nil {
		return err
	}
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"userId": userID}, bson.M{
		"$push": bson.M{listName: item},
	})
	if err != nil {
		return err
	}
	if counts.Matched == 0 {
		return common.ErrNotFound
	}
	return nil
}

// AddPost thêm một slot đăng bài vào lịch của user.
func (s *ScheduleService) AddPost(ctx context.Context, userID primitive.ObjectID, input *scheduledto.ScheduledPostInput) (*models.ScheduledPost, error) {
	post := models.ScheduledPost{
		ID:        uuid.NewString(),
		DayOfWeek: input.DayOfWeek,
		TimeOfDay: input.TimeOfDay,
		Content:   input.Content,
		MediaURLs: input.MediaURLs,
	}
	if err := s.pushSlot(ctx, userID, models.ListPosts, post.DayOfWeek, post.TimeOfDay, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// AddCompetitorAnalysis thêm một slot phân tích đối thủ vào lịch của user.
func (s *ScheduleService) AddCompetitorAnalysis(ctx context.Context, userID primitive.ObjectID, input *scheduledto.ScheduledCompetitorAnalysisInput) (*models.ScheduledCompetitorAnalysis, error) {
	analysis := models.ScheduledCompetitorAnalysis{
		ID:            uuid.NewString(),
		DayOfWeek:     input.DayOfWeek,
		TimeOfDay:     input.TimeOfDay,
		AnalysisFocus: input.AnalysisFocus,
		Keywords:      input.Keywords,
	}
	if err := s.pushSlot(ctx, userID, models.ListCompetitorAnalysis, analysis.DayOfWeek, analysis.TimeOfDay, analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// AddInteractionDate thêm một slot phân tích tương tác vào lịch của user.
func (s *ScheduleService) AddInteractionDate(ctx context.Context, userID primitive.ObjectID, input *scheduledto.InteractionAnalysisDateInput) (*models.InteractionAnalysisDate, error) {
	date := models.InteractionAnalysisDate{
		ID:        uuid.NewString(),
		DayOfWeek: input.DayOfWeek,
		TimeOfDay: input.TimeOfDay,
	}
	if err := s.pushSlot(ctx, userID, models.ListInteractionAnalysisDates, date.DayOfWeek, date.TimeOfDay, date); err != nil {
		return nil, err
	}
	return &date, nil
}

// UpdateSlot cập nhật một slot có sẵn trong danh sách listName.
// Đổi giờ yêu cầu cả dayOfWeek và timeOfDay để check trùng slot trọn vẹn,
// và slot đang sửa được loại khỏi phép kiểm tra.
func (s *ScheduleService) UpdateSlot(ctx context.Context, userID primitive.ObjectID, listName, itemID string, input *scheduledto.SlotUpdateInput) error {
	if listName != models.ListPosts && listName != models.ListCompetitorAnalysis && listName != models.ListInteractionAnalysisDates {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, nil)
	}

	if (input.DayOfWeek == nil) != (input.TimeOfDay == nil) {
		return common.NewError(common.ErrCodeValidationInput, "dayOfWeek và timeOfDay phải được cập nhật cùng nhau", common.StatusBadRequest, nil)
	}
	if input.DayOfWeek != nil && input.TimeOfDay != nil {
		if err := s.checkSlotConflict(ctx, userID, listName, *input.DayOfWeek, *input.TimeOfDay, itemID); err != nil {
			return err
		}
	}

	set := bson.M{}
	if input.DayOfWeek != nil {
		set[listName+".$.dayOfWeek"] = *input.DayOfWeek
	}
	if input.TimeOfDay != nil {
		set[listName+".$.timeOfDay"] = *input.TimeOfDay
	}
	if input.Content != nil && listName == models.ListPosts {
		set[listName+".$.content"] = *input.Content
	}
	if input.MediaURLs != nil && listName == models.ListPosts {
		set[listName+".$.mediaUrls"] = input.MediaURLs
	}
	if input.AnalysisFocus != nil && listName == models.ListCompetitorAnalysis {
		set[listName+".$.analysisFocus"] = *input.AnalysisFocus
	}
	if input.Keywords != nil && listName == models.ListCompetitorAnalysis {
		set[listName+".$.keywords"] = input.Keywords
	}
	if len(set) == 0 {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, nil)
	}

	filter := bson.M{"userId": userID, listName + ".id": itemID}
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if counts.Matched == 0 {
		return common.ErrNotFound
	}
	return nil
}

// RemoveSlot gỡ một slot khỏi danh sách listName theo UUID.
func (s *ScheduleService) RemoveSlot(ctx context.Context, userID primitive.ObjectID, listName, itemID string) error {
	if listName != models.ListPosts && listName != models.ListCompetitorAnalysis && listName != models.ListInteractionAnalysisDates {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, nil)
	}
	counts, err := s.BaseServiceMongoImpl.UpdateOneWithResult(ctx, bson.M{"userId": userID}, bson.M{
		"$pull": bson.M{listName: bson.M{"id": itemID}},
	})
	if err != nil {
		return err
	}
	// Matched = 0: user chưa có lịch. Modified = 0: lịch có nhưng không có slot này.
	if counts.Matched == 0 || counts.Modified == 0 {
		return common.ErrNotFound
	}
	return nil
}
