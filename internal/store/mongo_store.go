package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/linkshortener/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Имена коллекций MongoDB
const (
	urlsCollection     = "urls"
	pendingCollection  = "inactive"
	accountsCollection = "passwords"
)

// legacyDateLayout формат createdAt в документах, записанных строкой
const legacyDateLayout = "2006-01-02"

// linkCreatedAt пишется как BSON Date, а читается и из Date, и из строки "YYYY-MM-DD"
type linkCreatedAt time.Time

func (c linkCreatedAt) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(time.Time(c))
	return byte(typ), data, err
}

func (c *linkCreatedAt) UnmarshalBSONValue(typ byte, data []byte) error {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}

	switch raw.Type {
	case bson.TypeDateTime:
		*c = linkCreatedAt(raw.Time().UTC())
	case bson.TypeString:
		t, err := time.Parse(legacyDateLayout, raw.StringValue())
		if err != nil {
			return fmt.Errorf("invalid createdAt %q: %w", raw.StringValue(), err)
		}
		*c = linkCreatedAt(t)
	default:
		return fmt.Errorf("unsupported createdAt type %s", raw.Type)
	}

	return nil
}

type linkDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Full      string        `bson:"full"`
	Short     string        `bson:"short"`
	Clicks    int64         `bson:"clicks"`
	CreatedAt linkCreatedAt `bson:"createdAt"`
}

func (d linkDocument) toModel() model.ShortLink {
	return model.ShortLink{
		Full:      d.Full,
		Short:     model.Code(d.Short),
		Clicks:    d.Clicks,
		CreatedAt: time.Time(d.CreatedAt).UTC(),
	}
}

type graphDocument struct {
	Date     string `bson:"date"`
	NoOfURLs int64  `bson:"noOfUrls"`
}

type pendingDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	FirstName    string        `bson:"firstName"`
	LastName     string        `bson:"lastName"`
	Token        string        `bson:"token"`
	CreatedAt    time.Time     `bson:"createdAt"`
}

type accountDocument struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	FirstName    string        `bson:"firstName"`
	LastName     string        `bson:"lastName"`
	Token        string        `bson:"token,omitempty"`
	ExpireTime   *time.Time    `bson:"expireTime,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt"`
}

func (d accountDocument) toModel() model.Account {
	account := model.Account{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		CreatedAt:    d.CreatedAt.UTC(),
		ResetToken:   d.Token,
	}
	if d.ExpireTime != nil {
		account.ResetExpiresAt = d.ExpireTime.UTC()
	}
	return account
}

// helloReply поля ответа команды hello, по которым видна топология
type helloReply struct {
	SetName string `bson:"setName"`
	Msg     string `bson:"msg"`
}

// supportsTransactions транзакции доступны только в replica set и через mongos
func (r helloReply) supportsTransactions() bool {
	return r.SetName != "" || r.Msg == "isdbgrid"
}

// MongoStore реализует хранилище ссылок и учётных записей на MongoDB
type MongoStore struct {
	database *mongo.Database
	urls     *mongo.Collection
	pending  *mongo.Collection
	accounts *mongo.Collection

	transactions bool
}

// NewMongoStore создает хранилище поверх базы данных общего клиента
func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{
		database: database,
		urls:     database.Collection(urlsCollection),
		pending:  database.Collection(pendingCollection),
		accounts: database.Collection(accountsCollection),
	}
}

// EnsureIndexes создает уникальные индексы на код ссылки и email учётной записи
// и определяет, поддерживает ли сервер транзакции.
func (ms *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := ms.urls.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "short", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create url indexes: %w", err)
	}

	_, err = ms.accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create account indexes: %w", err)
	}

	_, err = ms.pending.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "token", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create pending account indexes: %w", err)
	}

	var reply helloReply
	if err := ms.database.RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&reply); err != nil {
		return fmt.Errorf("failed to detect topology: %w", err)
	}
	ms.transactions = reply.supportsTransactions()

	return nil
}

// CreateLink сохраняет новую ссылку, уникальность кода обеспечивает индекс
func (ms *MongoStore) CreateLink(ctx context.Context, link model.ShortLink) error {
	_, err := ms.urls.InsertOne(ctx, linkDocument{
		Full:      link.Full,
		Short:     string(link.Short),
		Clicks:    link.Clicks,
		CreatedAt: linkCreatedAt(link.CreatedAt),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("code %s: %w", link.Short, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert url: %w", err)
	}

	return nil
}

// IncrementClicks атомарно увеличивает счётчик переходов через $inc
func (ms *MongoStore) IncrementClicks(ctx context.Context, code model.Code) (model.ShortLink, error) {
	filter := bson.D{{Key: "short", Value: string(code)}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "clicks", Value: 1}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc linkDocument
	err := ms.urls.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.ShortLink{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
		}
		return model.ShortLink{}, fmt.Errorf("failed to increment clicks: %w", err)
	}

	return doc.toModel(), nil
}

// ListLinks возвращает все ссылки, новые первыми
func (ms *MongoStore) ListLinks(ctx context.Context) ([]model.ShortLink, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := ms.urls.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query urls: %w", err)
	}

	var docs []linkDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode urls: %w", err)
	}

	links := make([]model.ShortLink, len(docs))
	for i, doc := range docs {
		links[i] = doc.toModel()
	}

	return links, nil
}

// CountLinksByMonth считает ссылки по месяцу создания за все годы
func (ms *MongoStore) CountLinksByMonth(ctx context.Context) ([]model.GraphPoint, error) {
	return ms.aggregateGraph(ctx, nil, "%m")
}

// CountLinksByDay считает ссылки по дню месяца в интервале [from, to)
func (ms *MongoStore) CountLinksByDay(ctx context.Context, from, to time.Time) ([]model.GraphPoint, error) {
	match := bson.D{{Key: "createdAt", Value: bson.D{
		{Key: "$gte", Value: from},
		{Key: "$lt", Value: to},
	}}}

	return ms.aggregateGraph(ctx, match, "%d")
}

func (ms *MongoStore) aggregateGraph(ctx context.Context, match bson.D, format string) ([]model.GraphPoint, error) {
	// Строковые даты старых документов приводятся к Date до фильтрации и группировки
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "createdAt", Value: bson.D{{Key: "$toDate", Value: "$createdAt"}}},
		}}},
	}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: format},
				{Key: "date", Value: "$createdAt"},
			}}}},
			{Key: "noOfUrls", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "date", Value: "$_id"},
			{Key: "noOfUrls", Value: 1},
		}}},
	)

	cursor, err := ms.urls.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate url counts: %w", err)
	}

	var docs []graphDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode url counts: %w", err)
	}

	points := make([]model.GraphPoint, len(docs))
	for i, doc := range docs {
		points[i] = model.GraphPoint{Date: doc.Date, NoOfURLs: doc.NoOfURLs}
	}

	return points, nil
}

// CreatePendingAccount сохраняет неподтверждённую регистрацию
func (ms *MongoStore) CreatePendingAccount(ctx context.Context, account model.PendingAccount) error {
	_, err := ms.pending.InsertOne(ctx, pendingDocument{
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Token:        account.Token,
		CreatedAt:    account.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert pending account: %w", err)
	}

	return nil
}

// ActivatePendingAccount создает учётную запись из регистрации и удаляет все регистрации
// с теми же email и токеном. Дубликат email отсекает уникальный индекс до удаления.
// На standalone сервере вставка и удаление выполняются без транзакции.
func (ms *MongoStore) ActivatePendingAccount(ctx context.Context, email, token string) (model.Account, error) {
	if !ms.transactions {
		return ms.activatePending(ctx, email, token)
	}

	session, err := ms.database.Client().StartSession()
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		return ms.activatePending(ctx, email, token)
	})
	if err != nil {
		return model.Account{}, err
	}

	return result.(model.Account), nil
}

func (ms *MongoStore) activatePending(ctx context.Context, email, token string) (model.Account, error) {
	filter := bson.D{{Key: "email", Value: email}, {Key: "token", Value: token}}

	var pending pendingDocument
	err := ms.pending.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})).Decode(&pending)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Account{}, fmt.Errorf("pending account %s: %w", email, ErrNotFound)
		}
		return model.Account{}, fmt.Errorf("failed to read pending account: %w", err)
	}

	doc := accountDocument{
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		FirstName:    pending.FirstName,
		LastName:     pending.LastName,
		CreatedAt:    time.Now().UTC(),
	}

	result, err := ms.accounts.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.Account{}, fmt.Errorf("account %s: %w", email, ErrAlreadyExists)
		}
		return model.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		doc.ID = id
	}

	if _, err := ms.pending.DeleteMany(ctx, filter); err != nil {
		return model.Account{}, fmt.Errorf("failed to delete pending accounts: %w", err)
	}

	return doc.toModel(), nil
}

// FindAccount ищет активную учётную запись по email
func (ms *MongoStore) FindAccount(ctx context.Context, email string) (model.Account, error) {
	var doc accountDocument
	err := ms.accounts.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Account{}, fmt.Errorf("account %s: %w", email, ErrNotFound)
		}
		return model.Account{}, fmt.Errorf("failed to read account: %w", err)
	}

	return doc.toModel(), nil
}

// SetResetToken сохраняет токен сброса пароля и срок его действия
func (ms *MongoStore) SetResetToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "token", Value: token},
		{Key: "expireTime", Value: expiresAt},
	}}}

	result, err := ms.accounts.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account %s: %w", email, ErrNotFound)
	}

	return nil
}

// UpdatePassword меняет пароль, только если токен сброса совпадает, и очищает токен
func (ms *MongoStore) UpdatePassword(ctx context.Context, email, token, passwordHash string) error {
	if token == "" {
		return fmt.Errorf("account %s with reset token: %w", email, ErrNotFound)
	}

	filter := bson.D{{Key: "email", Value: email}, {Key: "token", Value: token}}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "password", Value: passwordHash}}},
		{Key: "$unset", Value: bson.D{{Key: "token", Value: ""}, {Key: "expireTime", Value: ""}}},
	}

	result, err := ms.accounts.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("account %s with reset token: %w", email, ErrNotFound)
	}

	return nil
}
