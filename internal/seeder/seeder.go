// Package seeder sequences the four seeding phases against the identity,
// catalog and social-graph services, routing every attempt through the
// operation log.
package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"ministeam-seeder/internal/api"
	"ministeam-seeder/internal/constants"
	"ministeam-seeder/internal/domain"
	"ministeam-seeder/internal/fixtures"
	"ministeam-seeder/internal/oplog"
)

type Orchestrator struct {
	client *api.Client
	opLog  *oplog.Log
	rng    *rand.Rand
	logger zerolog.Logger

	// sleep paces calls between operations; tests replace it with a no-op.
	sleep func(time.Duration)
}

func New(client *api.Client, opLog *oplog.Log, rng *rand.Rand, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		client: client,
		opLog:  opLog,
		rng:    rng,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Run executes all phases in dependency order. A failure on one item never
// aborts its phase; an unanticipated panic aborts the remaining phases and
// comes back as an error so the caller can still finalize the log.
func (o *Orchestrator) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fatal seeding error: %v", r)
		}
	}()

	users := o.CreateUsers(ctx)
	games := o.CreateGames(ctx)
	o.SyncGraph(ctx, users, games)
	o.CreateFriendships(ctx, users)
	o.SimulatePurchases(ctx, users, games)
	return nil
}

type createUserResponse struct {
	Data struct {
		ID domain.OpaqueID `json:"id"`
	} `json:"data"`
}

// CreateUsers seeds the fixture users into the identity service and returns
// the ones the service confirmed, with their assigned ids.
func (o *Orchestrator) CreateUsers(ctx context.Context) []domain.CreatedUser {
	o.logger.Info().Msg("phase 1: creating users")

	var created []domain.CreatedUser
	for _, user := range fixtures.Users() {
		result := o.post(ctx, api.Identity, "/users", user)

		if result.OK() {
			var resp createUserResponse
			if decodeErr := json.Unmarshal(result.Body, &resp); decodeErr != nil || resp.Data.ID == "" {
				if decodeErr == nil {
					decodeErr = fmt.Errorf("user id missing from response")
				}
				result = api.Result{
					Outcome:    api.OutcomeFailure,
					StatusCode: result.StatusCode,
					Err:        fmt.Errorf("decode user response: %w", decodeErr),
				}
			} else {
				created = append(created, domain.CreatedUser{
					ID:          resp.Data.ID.String(),
					DisplayName: user.DisplayName,
					Email:       user.Email,
				})
				o.logger.Info().
					Str("name", user.DisplayName).
					Str("user_id", resp.Data.ID.String()).
					Msg("user created")
			}
		}
		if !result.OK() {
			o.logger.Error().Err(result.Err).Str("name", user.DisplayName).Msg("failed to create user")
		}

		o.opLog.Record(oplog.OpCreateUser, "/users", user, result)
		o.sleep(constants.UserPacing)
	}
	return created
}

// CreateGames seeds the fixture games into the catalog service and returns
// the entries the service confirmed.
func (o *Orchestrator) CreateGames(ctx context.Context) []domain.CreatedGame {
	o.logger.Info().Msg("phase 2: creating catalog entries")

	var created []domain.CreatedGame
	for _, game := range fixtures.Games() {
		entry := fixtures.CatalogEntry(game)
		result := o.post(ctx, api.Catalog, "/catalog", entry)

		if result.OK() {
			created = append(created, domain.CreatedGame{
				GameID:      game.GameID,
				DisplayName: game.DisplayName,
			})
			o.logger.Info().
				Str("name", game.DisplayName).
				Str("game_id", game.GameID).
				Msg("game created")
		} else {
			o.logger.Error().Err(result.Err).Str("name", game.DisplayName).Msg("failed to create game")
		}

		o.opLog.Record(oplog.OpCreateGame, "/catalog", entry, result)
		o.sleep(constants.GamePacing)
	}
	return created
}

type graphUserPayload struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type graphGamePayload struct {
	GameID string `json:"gameId"`
	Name   string `json:"name"`
}

// SyncGraph mirrors created users and games as nodes in the social graph,
// users first.
func (o *Orchestrator) SyncGraph(ctx context.Context, users []domain.CreatedUser, games []domain.CreatedGame) {
	o.logger.Info().Msg("phase 3: syncing social graph")

	for _, user := range users {
		payload := graphUserPayload{UserID: user.ID, Name: user.DisplayName}
		result := o.post(ctx, api.Social, "/users", payload)

		if result.OK() {
			o.logger.Info().Str("name", user.DisplayName).Msg("user added to graph")
		} else {
			o.logger.Error().Err(result.Err).Str("name", user.DisplayName).Msg("failed to add user to graph")
		}

		o.opLog.Record(oplog.OpSyncUserGraph, "/users", payload, result)
		o.sleep(constants.GraphSyncPacing)
	}

	for _, game := range games {
		payload := graphGamePayload{GameID: game.GameID, Name: game.DisplayName}
		result := o.post(ctx, api.Social, "/games", payload)

		if result.OK() {
			o.logger.Info().Str("name", game.DisplayName).Msg("game added to graph")
		} else {
			o.logger.Error().Err(result.Err).Str("name", game.DisplayName).Msg("failed to add game to graph")
		}

		o.opLog.Record(oplog.OpSyncGameGraph, "/games", payload, result)
		o.sleep(constants.GraphSyncPacing)
	}
}

type friendshipPayload struct {
	FriendID string `json:"friendId"`
}

// CreateFriendships runs the friendship trials: two uniform draws with
// replacement per trial, self-pairs skipped without a replacement draw.
// Duplicate friendships (409) are an expected no-op and leave no trace in
// the log. Returns the number of friendships created.
func (o *Orchestrator) CreateFriendships(ctx context.Context, users []domain.CreatedUser) int {
	o.logger.Info().Int("trials", constants.FriendshipTrials).Msg("phase 4a: creating friendships")

	if len(users) == 0 {
		o.logger.Warn().Msg("no users created, skipping friendships")
		return 0
	}

	created := 0
	for i := 0; i < constants.FriendshipTrials; i++ {
		user1 := users[o.rng.Intn(len(users))]
		user2 := users[o.rng.Intn(len(users))]
		if user1.ID == user2.ID {
			continue
		}

		payload := friendshipPayload{FriendID: user2.ID}
		endpoint := fmt.Sprintf("/users/%s/friends", user1.ID)
		result := o.post(ctx, api.Social, endpoint, payload)

		switch {
		case result.OK():
			created++
			o.logger.Info().
				Str("user1", user1.DisplayName).
				Str("user2", user2.DisplayName).
				Msg("friendship created")
			o.opLog.Record(oplog.OpCreateFriendship, endpoint, payload, result)
		case result.Conflict():
			// already friends, expected duplicate
		default:
			o.logger.Error().Err(result.Err).Msg("failed to create friendship")
			o.opLog.Record(oplog.OpCreateFriendship, endpoint, payload, result)
		}

		o.sleep(constants.FriendshipPacing)
	}

	o.logger.Info().Int("created", created).Msg("friendships phase complete")
	return created
}

type libraryPayload struct {
	GameID    string  `json:"gameId"`
	PricePaid float64 `json:"pricePaid"`
}

type ownershipPayload struct {
	GameID      string `json:"gameId"`
	HoursPlayed int    `json:"hoursPlayed"`
}

type purchaseErrPayload struct {
	User domain.CreatedUser `json:"user"`
	Game domain.CreatedGame `json:"game"`
}

// SimulatePurchases runs the purchase trials. Each purchase is two dependent
// writes: the library entry on the identity service, then the ownership edge
// on the social graph. Duplicates (409) on either write are suppressed like
// friendships; other failures produce a PURCHASE_GAME_ERROR record. Returns
// the number of fully completed purchases.
func (o *Orchestrator) SimulatePurchases(ctx context.Context, users []domain.CreatedUser, games []domain.CreatedGame) int {
	o.logger.Info().Int("trials", constants.PurchaseTrials).Msg("phase 4b: simulating purchases")

	if len(users) == 0 || len(games) == 0 {
		o.logger.Warn().Msg("no users or games created, skipping purchases")
		return 0
	}

	completed := 0
	for i := 0; i < constants.PurchaseTrials; i++ {
		user := users[o.rng.Intn(len(users))]
		game := games[o.rng.Intn(len(games))]
		price := roundPrice(constants.PurchasePriceMin +
			o.rng.Float64()*(constants.PurchasePriceMax-constants.PurchasePriceMin))

		library := libraryPayload{GameID: game.GameID, PricePaid: price}
		libraryEndpoint := fmt.Sprintf("/users/%s/library", user.ID)
		libraryResult := o.post(ctx, api.Identity, libraryEndpoint, library)

		switch {
		case libraryResult.Conflict():
			// already owned, expected duplicate
			o.sleep(constants.PurchasePacing)
			continue
		case libraryResult.Failed():
			o.logger.Error().Err(libraryResult.Err).
				Str("user", user.DisplayName).
				Str("game", game.DisplayName).
				Msg("purchase failed")
			o.opLog.Record(oplog.OpPurchaseGameErr, "Multi-DB",
				purchaseErrPayload{User: user, Game: game}, libraryResult)
			o.sleep(constants.PurchasePacing)
			continue
		}

		o.logger.Info().
			Str("user", user.DisplayName).
			Str("game", game.DisplayName).
			Float64("price", price).
			Msg("game purchased")
		o.opLog.Record(oplog.OpPurchaseGamePG, libraryEndpoint, library, libraryResult)

		ownership := ownershipPayload{GameID: game.GameID, HoursPlayed: 0}
		ownershipEndpoint := fmt.Sprintf("/users/%s/games", user.ID)
		ownershipResult := o.post(ctx, api.Social, ownershipEndpoint, ownership)

		switch {
		case ownershipResult.OK():
			o.opLog.Record(oplog.OpPurchaseGameNeo, ownershipEndpoint, ownership, ownershipResult)
			completed++
		case ownershipResult.Conflict():
			// ownership edge already present, expected duplicate
		default:
			o.logger.Error().Err(ownershipResult.Err).
				Str("user", user.DisplayName).
				Str("game", game.DisplayName).
				Msg("failed to record ownership")
			o.opLog.Record(oplog.OpPurchaseGameErr, "Multi-DB",
				purchaseErrPayload{User: user, Game: game}, ownershipResult)
		}

		o.sleep(constants.PurchasePacing)
	}

	o.logger.Info().Int("completed", completed).Msg("purchases phase complete")
	return completed
}

func (o *Orchestrator) post(ctx context.Context, service api.Service, path string, payload any) api.Result {
	reqCtx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()
	return o.client.Post(reqCtx, service, path, payload)
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
