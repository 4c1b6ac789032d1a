package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrTxAlreadyBegun 同一個工作單元重複開啟事務
	ErrTxAlreadyBegun = errors.New("transaction already begun")
	// ErrTxNotBegun 事務尚未開啟
	ErrTxNotBegun = errors.New("transaction not begun")
)

// UnitOfWork 把一次下單的所有寫入（訂單、明細、扣庫存）包在同一個事務裡
// 一個實例只服務一次操作，不可跨請求共用
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error
	Products() IProductRepository
	Orders() IOrderRepository
}

// UnitOfWorkFactory 每次下單取得自己的工作單元
type UnitOfWorkFactory interface {
	NewUnitOfWork() UnitOfWork
}

type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Begin 開啟事務
// 錯誤:
//   - ErrTxAlreadyBegun: 已有進行中的事務
//   - err: 底層開啟事務失敗
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTxAlreadyBegun
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *GormUnitOfWork) Commit() error {
	if u.tx == nil {
		return ErrTxNotBegun
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback 丟棄 Begin 之後的所有寫入
// 未開啟事務時為 no-op
func (u *GormUnitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Products 回傳綁定當前事務的商品 repo
// 事務未開啟時綁定底層連線，僅供讀取
func (u *GormUnitOfWork) Products() IProductRepository {
	return NewProductDBRepo(NewDbDao(u.handle()))
}

// Orders 回傳綁定當前事務的訂單 repo
func (u *GormUnitOfWork) Orders() IOrderRepository {
	return NewOrderRepo(NewDbDao(u.handle()))
}

func (u *GormUnitOfWork) handle() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) NewUnitOfWork() UnitOfWork {
	return NewGormUnitOfWork(f.db)
}

var (
	_ UnitOfWork        = (*GormUnitOfWork)(nil)
	_ UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)
)
