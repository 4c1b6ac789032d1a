package appcontext

import (
	"fmt"
	"log"
	"time"

	"github.com/RoyceAzure/lab/productmgt/internal/api/handler"
	"github.com/RoyceAzure/lab/productmgt/internal/api/router"
	"github.com/RoyceAzure/lab/productmgt/internal/config"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/producer"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/productmgt/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const productCacheTTL = 5 * time.Minute

type ApplicationContext struct {
	Cf              *config.Config
	DbConn          *gorm.DB
	Store           db.UnifiedDB
	RedisClient     *redis.Client
	Producer        producer.Producer
	OrderService    service.IOrderService
	ProductService  service.IProductService
	CategoryService service.ICategoryService
	Server          *router.Server
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpDbConn()
	if err != nil {
		return err
	}
	err = app.setUpStore()
	if err != nil {
		return err
	}
	err = app.setUpRedis()
	if err != nil {
		return err
	}
	err = app.setUpProducer()
	if err != nil {
		return err
	}
	err = app.setUpServices()
	if err != nil {
		return err
	}
	err = app.setUpServer()
	if err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpStore() error {
	log.Printf("Start setup database store")
	app.Store = db.NewUnifiedDB(app.DbConn)
	if err := app.Store.InitMigrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Printf("Finish setup database store")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis client")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpProducer() error {
	log.Printf("Start setup event producer")
	app.Producer = producer.New(producer.Config{
		Brokers: app.Cf.KafkaBrokerList(),
	})
	log.Printf("Finish setup event producer")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")

	// 目錄讀取走cache, 下單交易走原始repo
	productCache := redis_repo.NewProductCacheRepo(app.RedisClient, productCacheTTL)
	cachedProductRepo := redis_decorator.NewCacheAsideProductRepo(app.Store, productCache)

	uowFactory := db.NewGormUnitOfWorkFactory(app.DbConn)

	app.OrderService = service.NewOrderService(uowFactory, app.Store, app.Store, app.Producer, app.Cf.EventTopic)
	app.ProductService = service.NewProductService(cachedProductRepo, app.Store, app.Producer, app.Cf.EventTopic)
	app.CategoryService = service.NewCategoryService(app.Store)

	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) setUpServer() error {
	log.Printf("Start setup server handlers")
	validate := validator.New()
	app.Server = router.NewServer(
		handler.NewOrderHandler(app.OrderService, validate),
		handler.NewProductHandler(app.ProductService, validate),
		handler.NewCategoryHandler(app.CategoryService, validate),
	)
	log.Printf("Finish setup server handlers")
	return nil
}

// Close 釋放外部資源
func (app *ApplicationContext) Close() {
	if app.Producer != nil {
		if err := app.Producer.Close(); err != nil {
			log.Printf("failed to close producer: %v", err)
		}
	}
	if app.RedisClient != nil {
		if err := app.RedisClient.Close(); err != nil {
			log.Printf("failed to close redis client: %v", err)
		}
	}
}
