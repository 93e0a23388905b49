package menus

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuMongoRepository struct {
	Collection *mongo.Collection
}

func NewMenuMongoRepository(db *mongo.Client, dbName string) contracts.MenuRepository {
	return &MenuMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionModulos),
	}
}

func (r *MenuMongoRepository) FindAllModulos(ctx context.Context) ([]models.MenuModulo, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "orden", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	modulos := make([]models.MenuModulo, 0)
	if err := cursor.All(ctx, &modulos); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return modulos, nil
}
