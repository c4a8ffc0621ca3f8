// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyfinding"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyword"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CategoryScore is the client for interacting with the CategoryScore builders.
	CategoryScore *CategoryScoreClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// KeyFinding is the client for interacting with the KeyFinding builders.
	KeyFinding *KeyFindingClient
	// Keyword is the client for interacting with the Keyword builders.
	Keyword *KeywordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CategoryScore = NewCategoryScoreClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.KeyFinding = NewKeyFindingClient(c.config)
	c.Keyword = NewKeywordClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		CategoryScore: NewCategoryScoreClient(cfg),
		Document:      NewDocumentClient(cfg),
		KeyFinding:    NewKeyFindingClient(cfg),
		Keyword:       NewKeywordClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		CategoryScore: NewCategoryScoreClient(cfg),
		Document:      NewDocumentClient(cfg),
		KeyFinding:    NewKeyFindingClient(cfg),
		Keyword:       NewKeywordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CategoryScore.
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
	c.CategoryScore.Use(hooks...)
	c.Document.Use(hooks...)
	c.KeyFinding.Use(hooks...)
	c.Keyword.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CategoryScore.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.KeyFinding.Intercept(interceptors...)
	c.Keyword.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CategoryScoreMutation:
		return c.CategoryScore.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *KeyFindingMutation:
		return c.KeyFinding.mutate(ctx, m)
	case *KeywordMutation:
		return c.Keyword.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CategoryScoreClient is a client for the CategoryScore schema.
type CategoryScoreClient struct {
	config
}

// NewCategoryScoreClient returns a client for the CategoryScore from the given config.
func NewCategoryScoreClient(c config) *CategoryScoreClient {
	return &CategoryScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `categoryscore.Hooks(f(g(h())))`.
func (c *CategoryScoreClient) Use(hooks ...Hook) {
	c.hooks.CategoryScore = append(c.hooks.CategoryScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `categoryscore.Intercept(f(g(h())))`.
func (c *CategoryScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.CategoryScore = append(c.inters.CategoryScore, interceptors...)
}

// Create returns a builder for creating a CategoryScore entity.
func (c *CategoryScoreClient) Create() *CategoryScoreCreate {
	mutation := newCategoryScoreMutation(c.config, OpCreate)
	return &CategoryScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CategoryScore entities.
func (c *CategoryScoreClient) CreateBulk(builders ...*CategoryScoreCreate) *CategoryScoreCreateBulk {
	return &CategoryScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CategoryScoreClient) MapCreateBulk(slice any, setFunc func(*CategoryScoreCreate, int)) *CategoryScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CategoryScoreCreateBulk{err: fmt.Errorf("calling to CategoryScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CategoryScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CategoryScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CategoryScore.
func (c *CategoryScoreClient) Update() *CategoryScoreUpdate {
	mutation := newCategoryScoreMutation(c.config, OpUpdate)
	return &CategoryScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CategoryScoreClient) UpdateOne(_m *CategoryScore) *CategoryScoreUpdateOne {
	mutation := newCategoryScoreMutation(c.config, OpUpdateOne, withCategoryScore(_m))
	return &CategoryScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CategoryScoreClient) UpdateOneID(id uuid.UUID) *CategoryScoreUpdateOne {
	mutation := newCategoryScoreMutation(c.config, OpUpdateOne, withCategoryScoreID(id))
	return &CategoryScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CategoryScore.
func (c *CategoryScoreClient) Delete() *CategoryScoreDelete {
	mutation := newCategoryScoreMutation(c.config, OpDelete)
	return &CategoryScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CategoryScoreClient) DeleteOne(_m *CategoryScore) *CategoryScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CategoryScoreClient) DeleteOneID(id uuid.UUID) *CategoryScoreDeleteOne {
	builder := c.Delete().Where(categoryscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CategoryScoreDeleteOne{builder}
}

// Query returns a query builder for CategoryScore.
func (c *CategoryScoreClient) Query() *CategoryScoreQuery {
	return &CategoryScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCategoryScore},
		inters: c.Interceptors(),
	}
}

// Get returns a CategoryScore entity by its id.
func (c *CategoryScoreClient) Get(ctx context.Context, id uuid.UUID) (*CategoryScore, error) {
	return c.Query().Where(categoryscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CategoryScoreClient) GetX(ctx context.Context, id uuid.UUID) *CategoryScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a CategoryScore.
func (c *CategoryScoreClient) QueryDocument(_m *CategoryScore) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(categoryscore.Table, categoryscore.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, categoryscore.DocumentTable, categoryscore.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CategoryScoreClient) Hooks() []Hook {
	return c.hooks.CategoryScore
}

// Interceptors returns the client interceptors.
func (c *CategoryScoreClient) Interceptors() []Interceptor {
	return c.inters.CategoryScore
}

func (c *CategoryScoreClient) mutate(ctx context.Context, m *CategoryScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CategoryScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CategoryScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CategoryScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CategoryScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CategoryScore mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKeywords queries the keywords edge of a Document.
func (c *DocumentClient) QueryKeywords(_m *Document) *KeywordQuery {
	query := (&KeywordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(keyword.Table, keyword.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.KeywordsTable, document.KeywordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryScores queries the scores edge of a Document.
func (c *DocumentClient) QueryScores(_m *Document) *CategoryScoreQuery {
	query := (&CategoryScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(categoryscore.Table, categoryscore.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ScoresTable, document.ScoresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFindings queries the findings edge of a Document.
func (c *DocumentClient) QueryFindings(_m *Document) *KeyFindingQuery {
	query := (&KeyFindingClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(keyfinding.Table, keyfinding.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.FindingsTable, document.FindingsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// KeyFindingClient is a client for the KeyFinding schema.
type KeyFindingClient struct {
	config
}

// NewKeyFindingClient returns a client for the KeyFinding from the given config.
func NewKeyFindingClient(c config) *KeyFindingClient {
	return &KeyFindingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `keyfinding.Hooks(f(g(h())))`.
func (c *KeyFindingClient) Use(hooks ...Hook) {
	c.hooks.KeyFinding = append(c.hooks.KeyFinding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `keyfinding.Intercept(f(g(h())))`.
func (c *KeyFindingClient) Intercept(interceptors ...Interceptor) {
	c.inters.KeyFinding = append(c.inters.KeyFinding, interceptors...)
}

// Create returns a builder for creating a KeyFinding entity.
func (c *KeyFindingClient) Create() *KeyFindingCreate {
	mutation := newKeyFindingMutation(c.config, OpCreate)
	return &KeyFindingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KeyFinding entities.
func (c *KeyFindingClient) CreateBulk(builders ...*KeyFindingCreate) *KeyFindingCreateBulk {
	return &KeyFindingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KeyFindingClient) MapCreateBulk(slice any, setFunc func(*KeyFindingCreate, int)) *KeyFindingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KeyFindingCreateBulk{err: fmt.Errorf("calling to KeyFindingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KeyFindingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KeyFindingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KeyFinding.
func (c *KeyFindingClient) Update() *KeyFindingUpdate {
	mutation := newKeyFindingMutation(c.config, OpUpdate)
	return &KeyFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KeyFindingClient) UpdateOne(_m *KeyFinding) *KeyFindingUpdateOne {
	mutation := newKeyFindingMutation(c.config, OpUpdateOne, withKeyFinding(_m))
	return &KeyFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KeyFindingClient) UpdateOneID(id uuid.UUID) *KeyFindingUpdateOne {
	mutation := newKeyFindingMutation(c.config, OpUpdateOne, withKeyFindingID(id))
	return &KeyFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KeyFinding.
func (c *KeyFindingClient) Delete() *KeyFindingDelete {
	mutation := newKeyFindingMutation(c.config, OpDelete)
	return &KeyFindingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KeyFindingClient) DeleteOne(_m *KeyFinding) *KeyFindingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KeyFindingClient) DeleteOneID(id uuid.UUID) *KeyFindingDeleteOne {
	builder := c.Delete().Where(keyfinding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KeyFindingDeleteOne{builder}
}

// Query returns a query builder for KeyFinding.
func (c *KeyFindingClient) Query() *KeyFindingQuery {
	return &KeyFindingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKeyFinding},
		inters: c.Interceptors(),
	}
}

// Get returns a KeyFinding entity by its id.
func (c *KeyFindingClient) Get(ctx context.Context, id uuid.UUID) (*KeyFinding, error) {
	return c.Query().Where(keyfinding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KeyFindingClient) GetX(ctx context.Context, id uuid.UUID) *KeyFinding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a KeyFinding.
func (c *KeyFindingClient) QueryDocument(_m *KeyFinding) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(keyfinding.Table, keyfinding.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, keyfinding.DocumentTable, keyfinding.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KeyFindingClient) Hooks() []Hook {
	return c.hooks.KeyFinding
}

// Interceptors returns the client interceptors.
func (c *KeyFindingClient) Interceptors() []Interceptor {
	return c.inters.KeyFinding
}

func (c *KeyFindingClient) mutate(ctx context.Context, m *KeyFindingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KeyFindingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KeyFindingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KeyFindingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KeyFindingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KeyFinding mutation op: %q", m.Op())
	}
}

// KeywordClient is a client for the Keyword schema.
type KeywordClient struct {
	config
}

// NewKeywordClient returns a client for the Keyword from the given config.
func NewKeywordClient(c config) *KeywordClient {
	return &KeywordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `keyword.Hooks(f(g(h())))`.
func (c *KeywordClient) Use(hooks ...Hook) {
	c.hooks.Keyword = append(c.hooks.Keyword, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `keyword.Intercept(f(g(h())))`.
func (c *KeywordClient) Intercept(interceptors ...Interceptor) {
	c.inters.Keyword = append(c.inters.Keyword, interceptors...)
}

// Create returns a builder for creating a Keyword entity.
func (c *KeywordClient) Create() *KeywordCreate {
	mutation := newKeywordMutation(c.config, OpCreate)
	return &KeywordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Keyword entities.
func (c *KeywordClient) CreateBulk(builders ...*KeywordCreate) *KeywordCreateBulk {
	return &KeywordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KeywordClient) MapCreateBulk(slice any, setFunc func(*KeywordCreate, int)) *KeywordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KeywordCreateBulk{err: fmt.Errorf("calling to KeywordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KeywordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KeywordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Keyword.
func (c *KeywordClient) Update() *KeywordUpdate {
	mutation := newKeywordMutation(c.config, OpUpdate)
	return &KeywordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KeywordClient) UpdateOne(_m *Keyword) *KeywordUpdateOne {
	mutation := newKeywordMutation(c.config, OpUpdateOne, withKeyword(_m))
	return &KeywordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KeywordClient) UpdateOneID(id uuid.UUID) *KeywordUpdateOne {
	mutation := newKeywordMutation(c.config, OpUpdateOne, withKeywordID(id))
	return &KeywordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Keyword.
func (c *KeywordClient) Delete() *KeywordDelete {
	mutation := newKeywordMutation(c.config, OpDelete)
	return &KeywordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KeywordClient) DeleteOne(_m *Keyword) *KeywordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KeywordClient) DeleteOneID(id uuid.UUID) *KeywordDeleteOne {
	builder := c.Delete().Where(keyword.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KeywordDeleteOne{builder}
}

// Query returns a query builder for Keyword.
func (c *KeywordClient) Query() *KeywordQuery {
	return &KeywordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKeyword},
		inters: c.Interceptors(),
	}
}

// Get returns a Keyword entity by its id.
func (c *KeywordClient) Get(ctx context.Context, id uuid.UUID) (*Keyword, error) {
	return c.Query().Where(keyword.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KeywordClient) GetX(ctx context.Context, id uuid.UUID) *Keyword {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Keyword.
func (c *KeywordClient) QueryDocument(_m *Keyword) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(keyword.Table, keyword.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, keyword.DocumentTable, keyword.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KeywordClient) Hooks() []Hook {
	return c.hooks.Keyword
}

// Interceptors returns the client interceptors.
func (c *KeywordClient) Interceptors() []Interceptor {
	return c.inters.Keyword
}

func (c *KeywordClient) mutate(ctx context.Context, m *KeywordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KeywordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KeywordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KeywordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KeywordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Keyword mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CategoryScore, Document, KeyFinding, Keyword []ent.Hook
	}
	inters struct {
		CategoryScore, Document, KeyFinding, Keyword []ent.Interceptor
	}
)
