package usuarios

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

type RolMongoRepository struct {
	Collection *mongo.Collection
}

func NewRolMongoRepository(db *mongo.Client, dbName string) contracts.RolRepository {
	return &RolMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRoles),
	}
}

func (r *RolMongoRepository) FindByNombre(ctx context.Context, nombre string) (*models.Rol, error) {
	var rol models.Rol
	err := r.Collection.FindOne(ctx, bson.M{"nombre": nombre}).Decode(&rol)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &rol, nil
}

func (r *RolMongoRepository) FindByNombres(ctx context.Context, nombres []string) ([]models.Rol, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"nombre": bson.M{"$in": nombres}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	roles := make([]models.Rol, 0)
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return roles, nil
}

func (r *RolMongoRepository) UpsertRol(ctx context.Context, rol *models.Rol) error {
	filter := bson.M{"nombre": rol.Nombre}
	update := bson.M{"$set": bson.M{
		"nombre":   rol.Nombre,
		"permisos": rol.Permisos,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *RolMongoRepository) FindAll(ctx context.Context) ([]models.Rol, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	roles := make([]models.Rol, 0)
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return roles, nil
}
