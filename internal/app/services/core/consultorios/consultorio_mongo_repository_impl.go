package consultorios

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConsultorioMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultorioMongoRepository(db *mongo.Client, dbName string) contracts.ConsultorioRepository {
	return &ConsultorioMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultorios),
	}
}

func (r *ConsultorioMongoRepository) CreateConsultorio(ctx context.Context, consultorio *models.Consultorio) (string, error) {
	result, err := r.Collection.InsertOne(ctx, consultorio)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConsultorioMongoRepository) FindByID(ctx context.Context, consultorioID string) (*models.Consultorio, error) {
	objectID, err := primitive.ObjectIDFromHex(consultorioID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var consultorio models.Consultorio
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consultorio)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultorio, nil
}

func (r *ConsultorioMongoRepository) FindByIDs(ctx context.Context, consultorioIDs []string) ([]models.Consultorio, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(consultorioIDs))
	for _, id := range consultorioIDs {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		objectIDs = append(objectIDs, objectID)
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	consultorios := make([]models.Consultorio, 0)
	if err := cursor.All(ctx, &consultorios); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return consultorios, nil
}

func (r *ConsultorioMongoRepository) FindAll(ctx context.Context) ([]models.Consultorio, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	consultorios := make([]models.Consultorio, 0)
	if err := cursor.All(ctx, &consultorios); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return consultorios, nil
}

func (r *ConsultorioMongoRepository) UpdateConsultorio(ctx context.Context, consultorio *models.Consultorio) error {
	filter := bson.M{"_id": consultorio.ID}
	update := bson.M{"$set": bson.M{
		"nombre":    consultorio.Nombre,
		"direccion": consultorio.Direccion,
		"telefono":  consultorio.Telefono,
		"logo_url":  consultorio.LogoURL,
		"activo":    consultorio.Activo,
		"whatsapp":  consultorio.WhatsApp,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ConsultorioMongoRepository) DeleteConsultorio(ctx context.Context, consultorioID string) error {
	objectID, err := primitive.ObjectIDFromHex(consultorioID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
