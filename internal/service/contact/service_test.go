package contact

import (
	"testing"
	"time"

	dao "contact_admin_server/internal/dao/mysql"
	"contact_admin_server/internal/dao/mysql/repository"
	"contact_admin_server/internal/dto/request"
	"contact_admin_server/internal/model"
	"contact_admin_server/pkg/errorx"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, *repository.Repositories) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one in-memory sqlite database per connection otherwise
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dao.Migrate(db))
	return db, repository.NewRepositories(db)
}

func createCategory(t *testing.T, db *gorm.DB, content string) model.Category {
	t.Helper()
	category := model.Category{Content: content}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createContact(t *testing.T, db *gorm.DB, c model.Contact) model.Contact {
	t.Helper()
	require.NoError(t, db.Create(&c).Error)
	return c
}

func ptrInt8(v int8) *int8 { return &v }
func ptrUint(v uint) *uint { return &v }

func localTime(value string) time.Time {
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestListContactsAppliesAllFilters(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)

	delivery := createCategory(t, db, "商品のお届けについて")
	other := createCategory(t, db, "その他")

	ken := createContact(t, db, model.Contact{
		CategoryID: delivery.ID,
		FirstName:  "Ken",
		LastName:   "Ito",
		Gender:     1,
		Email:      "ken@example.com",
		Tel:        "0312345678",
		Address:    "Tokyo",
		Detail:     "配送について",
		CreatedAt:  localTime("2024-02-01 09:00:00"),
	})
	createContact(t, db, model.Contact{
		CategoryID: other.ID,
		FirstName:  "Jane",
		LastName:   "Smith",
		Gender:     2,
		Email:      "jane@example.com",
		Tel:        "0312345679",
		Address:    "Osaka",
		Detail:     "その他の質問",
		CreatedAt:  localTime("2024-02-02 09:00:00"),
	})

	data, meta, err := svc.ListContacts(request.IndexContactRequest{
		Keyword:    "Ken",
		Gender:     ptrInt8(1),
		CategoryID: ptrUint(delivery.ID),
		Date:       "2024-02-01",
	})
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, ken.ID, data[0].ID)
	assert.EqualValues(t, 1, meta.Total)
	require.NotNil(t, data[0].Category)
	assert.Equal(t, delivery.ID, data[0].Category.ID)
}

func TestListContactsKeywordMatchesAnyOfThreeColumns(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	byFirst := createContact(t, db, model.Contact{
		CategoryID: category.ID, FirstName: "Taro", LastName: "Yamada",
		Gender: 1, Email: "a@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
	})
	byLast := createContact(t, db, model.Contact{
		CategoryID: category.ID, FirstName: "Hanako", LastName: "Tarosaki",
		Gender: 2, Email: "b@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
	})
	byEmail := createContact(t, db, model.Contact{
		CategoryID: category.ID, FirstName: "Jiro", LastName: "Suzuki",
		Gender: 1, Email: "taro@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
	})
	createContact(t, db, model.Contact{
		CategoryID: category.ID, FirstName: "Saburo", LastName: "Tanaka",
		Gender: 1, Email: "c@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
	})

	data, meta, err := svc.ListContacts(request.IndexContactRequest{Keyword: "aro"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, meta.Total)

	ids := make(map[uint]bool)
	for _, c := range data {
		ids[c.ID] = true
	}
	assert.True(t, ids[byFirst.ID])
	assert.True(t, ids[byLast.ID])
	assert.True(t, ids[byEmail.ID])
}

func TestListContactsGenderZeroMeansUnfiltered(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	for gender := int8(1); gender <= 3; gender++ {
		createContact(t, db, model.Contact{
			CategoryID: category.ID, FirstName: "F", LastName: "L",
			Gender: gender, Email: "x@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
		})
	}

	data, meta, err := svc.ListContacts(request.IndexContactRequest{Gender: ptrInt8(0)})
	require.NoError(t, err)
	assert.Len(t, data, 3)
	assert.EqualValues(t, 3, meta.Total)

	data, _, err = svc.ListContacts(request.IndexContactRequest{Gender: ptrInt8(2)})
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.EqualValues(t, 2, data[0].Gender)
}

// The date filter covers one calendar day as the half-open range
// [00:00:00, next day 00:00:00): both ends of the day match, the
// neighboring days do not.
func TestListContactsDateFilterDayBoundaries(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	base := model.Contact{
		CategoryID: category.ID, FirstName: "F", LastName: "L",
		Gender: 1, Email: "x@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
	}

	dayStart := base
	dayStart.CreatedAt = localTime("2024-02-01 00:00:00")
	dayStart = createContact(t, db, dayStart)

	dayEnd := base
	dayEnd.CreatedAt = localTime("2024-02-01 23:59:59")
	dayEnd = createContact(t, db, dayEnd)

	before := base
	before.CreatedAt = localTime("2024-01-31 23:59:59")
	createContact(t, db, before)

	after := base
	after.CreatedAt = localTime("2024-02-02 00:00:00")
	createContact(t, db, after)

	data, meta, err := svc.ListContacts(request.IndexContactRequest{Date: "2024-02-01"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, meta.Total)
	require.Len(t, data, 2)
	assert.Equal(t, dayEnd.ID, data[0].ID)
	assert.Equal(t, dayStart.ID, data[1].ID)
}

func TestListContactsWithoutFiltersReturnsEverything(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	for i := 0; i < 5; i++ {
		createContact(t, db, model.Contact{
			CategoryID: category.ID, FirstName: "F", LastName: "L",
			Gender: 1, Email: "x@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
		})
	}

	_, meta, err := svc.ListContacts(request.IndexContactRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 5, meta.Total)
}

func TestListContactsOrdering(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	older := createContact(t, db, model.Contact{
		CategoryID: category.ID, FirstName: "Old", LastName: "L",
		Gender: 1, Email: "x@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
		CreatedAt: localTime("2024-02-01 08:00:00"),
	})
	newer := createContact(t, db, model.Contact{
		CategoryID: category.ID, FirstName: "New", LastName: "L",
		Gender: 1, Email: "x@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
		CreatedAt: localTime("2024-02-02 08:00:00"),
	})
	// same timestamp as older; the higher id must win the tie
	tied := createContact(t, db, model.Contact{
		CategoryID: category.ID, FirstName: "Tie", LastName: "L",
		Gender: 1, Email: "x@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
		CreatedAt: localTime("2024-02-01 08:00:00"),
	})

	data, _, err := svc.ListContacts(request.IndexContactRequest{})
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.Equal(t, newer.ID, data[0].ID)
	assert.Equal(t, tied.ID, data[1].ID)
	assert.Equal(t, older.ID, data[2].ID)
}

func TestListContactsPagination(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	for i := 0; i < 10; i++ {
		createContact(t, db, model.Contact{
			CategoryID: category.ID, FirstName: "F", LastName: "L",
			Gender: 1, Email: "x@example.com", Tel: "0312345678", Address: "Tokyo", Detail: "x",
		})
	}

	data, meta, err := svc.ListContacts(request.IndexContactRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, data, PageSize)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, PageSize, meta.PerPage)
	assert.EqualValues(t, 10, meta.Total)
	assert.Equal(t, 2, meta.LastPage)

	data, meta, err = svc.ListContacts(request.IndexContactRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, data, 3)
	assert.Equal(t, 2, meta.CurrentPage)
}

func TestListContactsRejectsUnknownCategory(t *testing.T) {
	_, repos := newTestDB(t)
	svc := NewContactService(repos)

	_, _, err := svc.ListContacts(request.IndexContactRequest{CategoryID: ptrUint(999)})
	require.Error(t, err)

	var codeErr *errorx.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, errorx.CodeInvalidParam, codeErr.Code)
	assert.Contains(t, codeErr.Fields, "category_id")
}

func TestCreateContactAttachesTags(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	t1 := model.Tag{Name: "質問"}
	t2 := model.Tag{Name: "要望"}
	require.NoError(t, db.Create(&t1).Error)
	require.NoError(t, db.Create(&t2).Error)

	err := svc.CreateContact(request.StoreContactRequest{
		CategoryID: category.ID,
		FirstName:  "Taro",
		LastName:   "Yamada",
		Gender:     1,
		Email:      "taro@example.com",
		Tel:        "0312345678",
		Address:    "Tokyo",
		Detail:     "お問い合わせ内容です",
		TagIDs:     []uint{t1.ID, t2.ID},
	})
	require.NoError(t, err)

	var joinCount int64
	require.NoError(t, db.Model(&model.ContactTag{}).Count(&joinCount).Error)
	assert.EqualValues(t, 2, joinCount)

	var stored model.Contact
	require.NoError(t, db.Where("email = ?", "taro@example.com").First(&stored).Error)

	got, err := svc.GetContact(stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Tags)
	assert.Len(t, *got.Tags, 2)
}

func TestCreateContactRejectsUnstorableGender(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	err := svc.CreateContact(request.StoreContactRequest{
		CategoryID: category.ID,
		FirstName:  "Taro",
		LastName:   "Yamada",
		Gender:     9,
		Email:      "taro@example.com",
		Tel:        "0312345678",
		Address:    "Tokyo",
		Detail:     "x",
	})
	require.Error(t, err)

	var codeErr *errorx.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, errorx.CodeInvalidParam, codeErr.Code)
	assert.Contains(t, codeErr.Fields, "gender")

	var count int64
	require.NoError(t, db.Model(&model.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateContactRejectsUnknownTag(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	err := svc.CreateContact(request.StoreContactRequest{
		CategoryID: category.ID,
		FirstName:  "Taro",
		LastName:   "Yamada",
		Gender:     1,
		Email:      "taro@example.com",
		Tel:        "0312345678",
		Address:    "Tokyo",
		Detail:     "x",
		TagIDs:     []uint{42},
	})
	require.Error(t, err)

	var codeErr *errorx.CodeError
	require.ErrorAs(t, err, &codeErr)
	assert.Contains(t, codeErr.Fields, "tag_ids")

	// nothing may be stored when tag attachment cannot happen
	var count int64
	require.NoError(t, db.Model(&model.Contact{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteContactRemovesJoinRows(t *testing.T) {
	db, repos := newTestDB(t)
	svc := NewContactService(repos)
	category := createCategory(t, db, "その他")

	tag := model.Tag{Name: "質問"}
	require.NoError(t, db.Create(&tag).Error)

	require.NoError(t, svc.CreateContact(request.StoreContactRequest{
		CategoryID: category.ID, FirstName: "Taro", LastName: "Yamada",
		Gender: 1, Email: "taro@example.com", Tel: "0312345678",
		Address: "Tokyo", Detail: "x", TagIDs: []uint{tag.ID},
	}))

	var stored model.Contact
	require.NoError(t, db.First(&stored).Error)

	require.NoError(t, svc.DeleteContact(stored.ID))

	var contactCount, joinCount int64
	require.NoError(t, db.Model(&model.Contact{}).Count(&contactCount).Error)
	require.NoError(t, db.Model(&model.ContactTag{}).Count(&joinCount).Error)
	assert.Zero(t, contactCount)
	assert.Zero(t, joinCount)

	// the tag itself survives
	var tagCount int64
	require.NoError(t, db.Model(&model.Tag{}).Count(&tagCount).Error)
	assert.EqualValues(t, 1, tagCount)
}

func TestDeleteContactNotFound(t *testing.T) {
	_, repos := newTestDB(t)
	svc := NewContactService(repos)

	err := svc.DeleteContact(999)
	require.Error(t, err)
	assert.True(t, errorx.IsNotFound(err))
}

func TestGetContactNotFound(t *testing.T) {
	_, repos := newTestDB(t)
	svc := NewContactService(repos)

	_, err := svc.GetContact(999)
	require.Error(t, err)
	assert.True(t, errorx.IsNotFound(err))
}
