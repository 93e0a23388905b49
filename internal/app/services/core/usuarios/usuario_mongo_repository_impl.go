package usuarios

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

type UsuarioMongoRepository struct {
	Collection *mongo.Collection
}

func NewUsuarioMongoRepository(db *mongo.Client, dbName string) contracts.UsuarioRepository {
	return &UsuarioMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsuarios),
	}
}

func (r *UsuarioMongoRepository) CreateUsuario(ctx context.Context, usuario *models.Usuario) (string, error) {
	result, err := r.Collection.InsertOne(ctx, usuario)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UsuarioMongoRepository) FindByID(ctx context.Context, usuarioID string) (*models.Usuario, error) {
	objectID, err := primitive.ObjectIDFromHex(usuarioID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var usuario models.Usuario
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &usuario, nil
}

func (r *UsuarioMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UsuarioMongoRepository) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UsuarioMongoRepository) FindByEmailOrUsername(ctx context.Context, identifier string) (*models.Usuario, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"email": identifier},
			{"username": identifier},
		},
	}
	return r.findOne(ctx, filter)
}

func (r *UsuarioMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Usuario, int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "username", Value: 1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	usuarios := make([]models.Usuario, 0)
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return usuarios, int(total), nil
}

func (r *UsuarioMongoRepository) UpdateUsuario(ctx context.Context, usuario *models.Usuario) error {
	filter := bson.M{"_id": usuario.ID}
	update := bson.M{"$set": bson.M{
		"nombre":                      usuario.Nombre,
		"apellido":                    usuario.Apellido,
		"activo":                      usuario.Activo,
		"rol_global":                  usuario.RolGlobal,
		"roles_consultorio":           usuario.RolesConsultorio,
		"consultorio_contexto_actual": usuario.ConsultorioContextoActual,
		"consultorio_principal":       usuario.ConsultorioPrincipal,
		"ultimo_consultorio_activo":   usuario.UltimoConsultorioActivo,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *UsuarioMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.Collection.FindOne(ctx, filter).Decode(&usuario)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &usuario, nil
}
