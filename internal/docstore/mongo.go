package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"surveyapp/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection = "Users"
	FormsCollection = "Forms"
)

// IsMongoURI reports whether uri addresses a MongoDB deployment.
func IsMongoURI(uri string) bool {
	return strings.HasPrefix(uri, "mongodb://") || strings.HasPrefix(uri, "mongodb+srv://")
}

// MongoStore keeps users and forms as documents. Questions and answers are
// embedded in their form and changed only through single-document updates.
type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
	forms  *mongo.Collection
}

// Connect opens a client for uri and checks that the deployment answers.
func Connect(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return NewMongoStore(client.Database(dbName)), nil
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		client: db.Client(),
		users:  db.Collection(UsersCollection),
		forms:  db.Collection(FormsCollection),
	}
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// EnsureIndexes creates the unique username index and the author lookup index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = s.forms.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create forms index: %w", err)
	}

	return nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user repository.User) error {
	_, err := s.users.InsertOne(ctx, newUserDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (s *MongoStore) GetUser(ctx context.Context, username string) (repository.User, error) {
	var doc userDocument

	err := s.users.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.User{}, repository.ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("find user: %w", err)
	}

	return doc.record(), nil
}

func (s *MongoStore) CreateForm(ctx context.Context, form repository.Form) error {
	_, err := s.forms.InsertOne(ctx, newFormDocument(form))
	if err != nil {
		return fmt.Errorf("insert form: %w", err)
	}

	return nil
}

func (s *MongoStore) GetForm(ctx context.Context, formID string) (repository.Form, error) {
	var doc formDocument

	err := s.forms.FindOne(ctx, bson.D{{Key: "_id", Value: formID}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repository.Form{}, repository.ErrFormNotFound
		}
		return repository.Form{}, fmt.Errorf("find form: %w", err)
	}

	return doc.record(), nil
}

func (s *MongoStore) GetFormsByAuthor(ctx context.Context, author string) ([]repository.Form, error) {
	cursor, err := s.forms.Find(ctx, bson.D{{Key: "author", Value: author}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find forms: %w", err)
	}

	var docs []formDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode forms: %w", err)
	}

	forms := make([]repository.Form, 0, len(docs))
	for _, doc := range docs {
		forms = append(forms, doc.record())
	}

	return forms, nil
}

// AddQuestion pushes the question only when no question of the form carries its name.
func (s *MongoStore) AddQuestion(ctx context.Context, formID string, question repository.Question) error {
	filter := bson.D{
		{Key: "_id", Value: formID},
		{Key: "questions.name", Value: bson.D{{Key: "$ne", Value: question.Name}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "questions", Value: newQuestionDocument(question)}}},
	}

	res, err := s.forms.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("push question: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	count, err := s.forms.CountDocuments(ctx, bson.D{{Key: "_id", Value: formID}})
	if err != nil {
		return fmt.Errorf("count forms: %w", err)
	}
	if count == 0 {
		return repository.ErrFormNotFound
	}

	return repository.ErrDuplicateQuestion
}

// AddAnswers appends every answer in one update, addressing each question
// through an array filter on its id.
func (s *MongoStore) AddAnswers(ctx context.Context, formID string, answers []repository.Answer) error {
	if len(answers) == 0 {
		return nil
	}

	var order []string
	values := map[string][]string{}
	for _, a := range answers {
		if _, ok := values[a.QuestionID]; !ok {
			order = append(order, a.QuestionID)
		}
		values[a.QuestionID] = append(values[a.QuestionID], a.Value)
	}

	push := bson.D{}
	filters := make([]interface{}, 0, len(order))
	for i, questionID := range order {
		ident := fmt.Sprintf("q%d", i)
		push = append(push, bson.E{
			Key:   "questions.$[" + ident + "].answers",
			Value: bson.D{{Key: "$each", Value: values[questionID]}},
		})
		filters = append(filters, bson.D{{Key: ident + ".id", Value: questionID}})
	}

	res, err := s.forms.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: formID}},
		bson.D{{Key: "$push", Value: push}},
		options.Update().SetArrayFilters(options.ArrayFilters{Filters: filters}),
	)
	if err != nil {
		return fmt.Errorf("push answers: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrFormNotFound
	}

	return nil
}
