package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/productmgt/internal/domain/model"
	evt_model "github.com/RoyceAzure/lab/productmgt/internal/domain/model/event"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/producer"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/productmgt/internal/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	// LowStockThreshold 扣庫存後低於此值就發出補貨事件
	LowStockThreshold = 10

	// publishTimeout 事件發佈的時間上限，broker 掛掉不能拖住下單回應
	publishTimeout = 5 * time.Second
)

// OrderItemRequest 下單請求的單一明細
type OrderItemRequest struct {
	ProductID uint
	Quantity  int
}

type IOrderService interface {
	PlaceOrder(ctx context.Context, customerName, customerEmail string, items []OrderItemRequest) (*model.Order, error)
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	GetOrdersByStatus(ctx context.Context, status uint) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
}

type OrderService struct {
	uowFactory  db.UnitOfWorkFactory
	productRepo db.IProductRepository
	orderRepo   db.IOrderRepository
	producer    producer.Producer
	eventTopic  string
}

func NewOrderService(uowFactory db.UnitOfWorkFactory, productRepo db.IProductRepository, orderRepo db.IOrderRepository, eventProducer producer.Producer, eventTopic string) *OrderService {
	return &OrderService{
		uowFactory:  uowFactory,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		producer:    eventProducer,
		eventTopic:  eventTopic,
	}
}

/*
PlaceOrder 下單流程

 1. 防禦性再驗證（外層 validator 做過一次，這裡不信任它）
 2. 載入所有商品，任一不存在整筆失敗
 3. 用載入當下的庫存快照預檢查所有明細，全過才動手寫
 4. 開事務：寫入訂單與明細、逐行條件式扣庫存、commit
 5. commit 成功後發佈事件，發佈失敗只記 log，訂單照樣成立

commit 之前任何一步失敗都會整筆回滾，不會留下半張訂單
*/
func (o *OrderService) PlaceOrder(ctx context.Context, customerName, customerEmail string, items []OrderItemRequest) (*model.Order, error) {
	if err := validatePlaceOrder(customerName, customerEmail, items); err != nil {
		return nil, err
	}

	// 載入商品，缺一個就整筆失敗
	products := make(map[uint]*model.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := o.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, db.ErrProductNotFound) {
				return nil, &NotFoundError{Resource: "product", ID: item.ProductID}
			}
			return nil, err
		}
		products[item.ProductID] = product
	}

	// 全部明細先檢查完才開始寫，訂單是全有或全無
	for _, item := range items {
		product := products[item.ProductID]
		if int(product.Stock) < item.Quantity {
			return nil, &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   int(product.Stock),
				Requested:   item.Quantity,
			}
		}
	}

	order := buildOrder(customerName, customerEmail, items, products)

	uow := o.uowFactory.NewUnitOfWork()
	if err := uow.Begin(ctx); err != nil {
		return nil, &TransactionError{Op: "begin", Err: err}
	}

	if err := uow.Orders().CreateOrder(ctx, order); err != nil {
		uow.Rollback()
		return nil, &TransactionError{Op: "create order", Err: err}
	}

	// 條件式扣庫存，補上讀取檢查與寫入之間的競態窗口
	// 扣不到就整筆回滾
	newStocks := make([]int, len(order.OrderItems))
	for i, item := range order.OrderItems {
		stock, err := uow.Products().DeductStock(ctx, item.ProductID, item.Quantity)
		if err != nil {
			uow.Rollback()
			switch {
			case errors.Is(err, db.ErrProductStockNotEnough):
				return nil, &InsufficientStockError{
					ProductID:   item.ProductID,
					ProductName: products[item.ProductID].Name,
					Available:   stock,
					Requested:   item.Quantity,
				}
			case errors.Is(err, db.ErrProductNotFound):
				return nil, &NotFoundError{Resource: "product", ID: item.ProductID}
			default:
				return nil, &TransactionError{Op: "deduct stock", Err: err}
			}
		}
		newStocks[i] = stock
	}

	if err := uow.Commit(); err != nil {
		uow.Rollback()
		return nil, &TransactionError{Op: "commit", Err: err}
	}

	// 這裡開始訂單已成立，任何失敗都不能讓結果變成錯誤
	o.publishOrderEvents(order, newStocks, products)

	return order, nil
}

// 發佈 OrderCreated 與 LowStock 事件
// dual-write 缺口：broker 掛掉事件就丟了，訂單仍然成立
func (o *OrderService) publishOrderEvents(order *model.Order, newStocks []int, products map[uint]*model.Product) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	evts := make([]evt_model.Event, 0, len(order.OrderItems)+1)
	evts = append(evts, evt_model.NewOrderCreatedEvent(order.ID, order.OrderNumber, order.TotalAmount, order.CreatedAt))

	for i, item := range order.OrderItems {
		if newStocks[i] < LowStockThreshold {
			product := products[item.ProductID]
			evts = append(evts, evt_model.NewLowStockEvent(product.ID, product.Name, newStocks[i]))
		}
	}

	if err := o.producer.Publish(ctx, o.eventTopic, evts...); err != nil {
		pubErr := &PublishError{Topic: o.eventTopic, Err: err}
		log.Warn().Err(pubErr).Uint("order_id", order.ID).Str("order_number", order.OrderNumber).
			Msg("order committed but event publish failed")
	}
}

// buildOrder 組出訂單聚合
// 單價取自載入當下的商品快照，之後商品改價不影響這張訂單
// 總金額等所有明細都算完才加總
func buildOrder(customerName, customerEmail string, items []OrderItemRequest, products map[uint]*model.Product) *model.Order {
	orderItems := make([]model.OrderItem, len(items))
	for i, item := range items {
		product := products[item.ProductID]
		orderItems[i] = model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Subtotal:  product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
	}

	order := &model.Order{
		OrderNumber:   util.GenerateOrderNumber(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Status:        model.OrderStatusPending,
		OrderItems:    orderItems,
	}
	order.TotalAmount = order.CalculateTotal()
	return order
}

func validatePlaceOrder(customerName, customerEmail string, items []OrderItemRequest) error {
	if customerName == "" {
		return &ValidationError{Field: "customer_name", Message: "customer name is required"}
	}
	if customerEmail == "" {
		return &ValidationError{Field: "customer_email", Message: "customer email is required"}
	}
	if len(items) == 0 {
		return &ValidationError{Field: "items", Message: "order must contain at least one item"}
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return &ValidationError{Field: "items.product_id", Message: "valid product id is required"}
		}
		if item.Quantity <= 0 {
			return &ValidationError{Field: "items.quantity", Message: "quantity must be greater than 0"}
		}
	}
	return nil
}

func (o *OrderService) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrOrderNotFound) {
			return nil, &NotFoundError{Resource: "order", ID: orderID}
		}
		return nil, err
	}
	return order, nil
}

// 查無資料回傳空列表，不視為錯誤
func (o *OrderService) GetOrdersByStatus(ctx context.Context, status uint) ([]model.Order, error) {
	return o.orderRepo.GetOrdersByStatus(ctx, status)
}

func (o *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return o.orderRepo.GetAllOrders(ctx)
}

var _ IOrderService = (*OrderService)(nil)
