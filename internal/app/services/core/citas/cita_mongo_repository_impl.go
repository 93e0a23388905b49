package citas

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CitaMongoRepository struct {
	Collection *mongo.Collection
}

func NewCitaMongoRepository(db *mongo.Client, dbName string) contracts.CitaRepository {
	return &CitaMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCitas),
	}
}

func (r *CitaMongoRepository) FindByConsultorioAndRange(ctx context.Context, consultorioID string, desde, hasta time.Time) ([]models.Cita, error) {
	filter := bson.M{
		"consultorio_id": consultorioID,
		"inicio": bson.M{
			"$gte": desde,
			"$lt":  hasta,
		},
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "inicio", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	citas := make([]models.Cita, 0)
	if err := cursor.All(ctx, &citas); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return citas, nil
}
