// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dnorman/learnchain/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/dnorman/learnchain/ent/llmrequestevent"
	"github.com/dnorman/learnchain/ent/quizanswerevent"
	"github.com/dnorman/learnchain/ent/reviewsessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// QuizAnswerEvent is the client for interacting with the QuizAnswerEvent builders.
	QuizAnswerEvent *QuizAnswerEventClient
	// ReviewSessionEvent is the client for interacting with the ReviewSessionEvent builders.
	ReviewSessionEvent *ReviewSessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.QuizAnswerEvent = NewQuizAnswerEventClient(c.config)
	c.ReviewSessionEvent = NewReviewSessionEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		QuizAnswerEvent:    NewQuizAnswerEventClient(cfg),
		ReviewSessionEvent: NewReviewSessionEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		QuizAnswerEvent:    NewQuizAnswerEventClient(cfg),
		ReviewSessionEvent: NewReviewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMRequestEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.LLMRequestEvent.Use(hooks...)
	c.QuizAnswerEvent.Use(hooks...)
	c.ReviewSessionEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMRequestEvent.Intercept(interceptors...)
	c.QuizAnswerEvent.Intercept(interceptors...)
	c.ReviewSessionEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *QuizAnswerEventMutation:
		return c.QuizAnswerEvent.mutate(ctx, m)
	case *ReviewSessionEventMutation:
		return c.ReviewSessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// QuizAnswerEventClient is a client for the QuizAnswerEvent schema.
type QuizAnswerEventClient struct {
	config
}

// NewQuizAnswerEventClient returns a client for the QuizAnswerEvent from the given config.
func NewQuizAnswerEventClient(c config) *QuizAnswerEventClient {
	return &QuizAnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizanswerevent.Hooks(f(g(h())))`.
func (c *QuizAnswerEventClient) Use(hooks ...Hook) {
	c.hooks.QuizAnswerEvent = append(c.hooks.QuizAnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizanswerevent.Intercept(f(g(h())))`.
func (c *QuizAnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizAnswerEvent = append(c.inters.QuizAnswerEvent, interceptors...)
}

// Create returns a builder for creating a QuizAnswerEvent entity.
func (c *QuizAnswerEventClient) Create() *QuizAnswerEventCreate {
	mutation := newQuizAnswerEventMutation(c.config, OpCreate)
	return &QuizAnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizAnswerEvent entities.
func (c *QuizAnswerEventClient) CreateBulk(builders ...*QuizAnswerEventCreate) *QuizAnswerEventCreateBulk {
	return &QuizAnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizAnswerEventClient) MapCreateBulk(slice any, setFunc func(*QuizAnswerEventCreate, int)) *QuizAnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizAnswerEventCreateBulk{err: fmt.Errorf("calling to QuizAnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizAnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizAnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizAnswerEvent.
func (c *QuizAnswerEventClient) Update() *QuizAnswerEventUpdate {
	mutation := newQuizAnswerEventMutation(c.config, OpUpdate)
	return &QuizAnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizAnswerEventClient) UpdateOne(_m *QuizAnswerEvent) *QuizAnswerEventUpdateOne {
	mutation := newQuizAnswerEventMutation(c.config, OpUpdateOne, withQuizAnswerEvent(_m))
	return &QuizAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizAnswerEventClient) UpdateOneID(id int) *QuizAnswerEventUpdateOne {
	mutation := newQuizAnswerEventMutation(c.config, OpUpdateOne, withQuizAnswerEventID(id))
	return &QuizAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizAnswerEvent.
func (c *QuizAnswerEventClient) Delete() *QuizAnswerEventDelete {
	mutation := newQuizAnswerEventMutation(c.config, OpDelete)
	return &QuizAnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizAnswerEventClient) DeleteOne(_m *QuizAnswerEvent) *QuizAnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizAnswerEventClient) DeleteOneID(id int) *QuizAnswerEventDeleteOne {
	builder := c.Delete().Where(quizanswerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizAnswerEventDeleteOne{builder}
}

// Query returns a query builder for QuizAnswerEvent.
func (c *QuizAnswerEventClient) Query() *QuizAnswerEventQuery {
	return &QuizAnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizAnswerEvent entity by its id.
func (c *QuizAnswerEventClient) Get(ctx context.Context, id int) (*QuizAnswerEvent, error) {
	return c.Query().Where(quizanswerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizAnswerEventClient) GetX(ctx context.Context, id int) *QuizAnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizAnswerEventClient) Hooks() []Hook {
	return c.hooks.QuizAnswerEvent
}

// Interceptors returns the client interceptors.
func (c *QuizAnswerEventClient) Interceptors() []Interceptor {
	return c.inters.QuizAnswerEvent
}

func (c *QuizAnswerEventClient) mutate(ctx context.Context, m *QuizAnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizAnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizAnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizAnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizAnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizAnswerEvent mutation op: %q", m.Op())
	}
}

// ReviewSessionEventClient is a client for the ReviewSessionEvent schema.
type ReviewSessionEventClient struct {
	config
}

// NewReviewSessionEventClient returns a client for the ReviewSessionEvent from the given config.
func NewReviewSessionEventClient(c config) *ReviewSessionEventClient {
	return &ReviewSessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewsessionevent.Hooks(f(g(h())))`.
func (c *ReviewSessionEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewSessionEvent = append(c.hooks.ReviewSessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewsessionevent.Intercept(f(g(h())))`.
func (c *ReviewSessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewSessionEvent = append(c.inters.ReviewSessionEvent, interceptors...)
}

// Create returns a builder for creating a ReviewSessionEvent entity.
func (c *ReviewSessionEventClient) Create() *ReviewSessionEventCreate {
	mutation := newReviewSessionEventMutation(c.config, OpCreate)
	return &ReviewSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewSessionEvent entities.
func (c *ReviewSessionEventClient) CreateBulk(builders ...*ReviewSessionEventCreate) *ReviewSessionEventCreateBulk {
	return &ReviewSessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewSessionEventClient) MapCreateBulk(slice any, setFunc func(*ReviewSessionEventCreate, int)) *ReviewSessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewSessionEventCreateBulk{err: fmt.Errorf("calling to ReviewSessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewSessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewSessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewSessionEvent.
func (c *ReviewSessionEventClient) Update() *ReviewSessionEventUpdate {
	mutation := newReviewSessionEventMutation(c.config, OpUpdate)
	return &ReviewSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewSessionEventClient) UpdateOne(_m *ReviewSessionEvent) *ReviewSessionEventUpdateOne {
	mutation := newReviewSessionEventMutation(c.config, OpUpdateOne, withReviewSessionEvent(_m))
	return &ReviewSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewSessionEventClient) UpdateOneID(id int) *ReviewSessionEventUpdateOne {
	mutation := newReviewSessionEventMutation(c.config, OpUpdateOne, withReviewSessionEventID(id))
	return &ReviewSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewSessionEvent.
func (c *ReviewSessionEventClient) Delete() *ReviewSessionEventDelete {
	mutation := newReviewSessionEventMutation(c.config, OpDelete)
	return &ReviewSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewSessionEventClient) DeleteOne(_m *ReviewSessionEvent) *ReviewSessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewSessionEventClient) DeleteOneID(id int) *ReviewSessionEventDeleteOne {
	builder := c.Delete().Where(reviewsessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewSessionEventDeleteOne{builder}
}

// Query returns a query builder for ReviewSessionEvent.
func (c *ReviewSessionEventClient) Query() *ReviewSessionEventQuery {
	return &ReviewSessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewSessionEvent entity by its id.
func (c *ReviewSessionEventClient) Get(ctx context.Context, id int) (*ReviewSessionEvent, error) {
	return c.Query().Where(reviewsessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewSessionEventClient) GetX(ctx context.Context, id int) *ReviewSessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewSessionEventClient) Hooks() []Hook {
	return c.hooks.ReviewSessionEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewSessionEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewSessionEvent
}

func (c *ReviewSessionEventClient) mutate(ctx context.Context, m *ReviewSessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewSessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewSessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewSessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewSessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewSessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMRequestEvent, QuizAnswerEvent, ReviewSessionEvent []ent.Hook
	}
	inters struct {
		LLMRequestEvent, QuizAnswerEvent, ReviewSessionEvent []ent.Interceptor
	}
)
