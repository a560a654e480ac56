package constants

import "time"

const (
	UserPacing       = 100 * time.Millisecond
	GamePacing       = 100 * time.Millisecond
	GraphSyncPacing  = 50 * time.Millisecond
	FriendshipPacing = 100 * time.Millisecond
	PurchasePacing   = 150 * time.Millisecond
)

const (
	RequestTimeout = 10 * time.Second
	RunTimeout     = 10 * time.Minute
)

const (
	FriendshipTrials = 50
	PurchaseTrials   = 100
)

const (
	PurchasePriceMin = 20.0
	PurchasePriceMax = 200.0
)

const (
	ClientMaxConnsPerHost     = 100
	ClientReadTimeout         = 10 * time.Second
	ClientWriteTimeout        = 10 * time.Second
	ClientMaxIdleConnDuration = 1 * time.Minute
)
