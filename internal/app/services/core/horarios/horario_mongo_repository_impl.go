package horarios

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

type HorarioMongoRepository struct {
	Collection *mongo.Collection
}

func NewHorarioMongoRepository(db *mongo.Client, dbName string) contracts.HorarioRepository {
	return &HorarioMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHorarios),
	}
}

func (r *HorarioMongoRepository) UpsertHorario(ctx context.Context, horario *models.Horario) error {
	filter := bson.M{
		"consultorio_id": horario.ConsultorioID,
		"dia_semana":     horario.DiaSemana,
	}
	update := bson.M{"$set": bson.M{
		"consultorio_id": horario.ConsultorioID,
		"dia_semana":     horario.DiaSemana,
		"apertura":       horario.Apertura,
		"cierre":         horario.Cierre,
		"slot_minutos":   horario.SlotMinutos,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *HorarioMongoRepository) FindByConsultorio(ctx context.Context, consultorioID string) ([]models.Horario, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"consultorio_id": consultorioID}, options.Find().SetSort(bson.D{{Key: "dia_semana", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	horarios := make([]models.Horario, 0)
	if err := cursor.All(ctx, &horarios); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return horarios, nil
}

func (r *HorarioMongoRepository) DeleteHorario(ctx context.Context, consultorioID string, diaSemana int) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"consultorio_id": consultorioID, "dia_semana": diaSemana})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrHorarioNotFound()
	}
	return nil
}
