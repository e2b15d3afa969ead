package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"resource_broker/internal/config"
	"resource_broker/internal/core"
	"resource_broker/internal/identity"
	"resource_broker/internal/pb"
	apperrors "resource_broker/pkg/errors"
	"resource_broker/pkg/telemetry"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// producerKey identifies one production offer: offers and their data
// streams are matched by caller identity plus resource id.
type producerKey struct {
	clientID   string
	resourceID string
}

// Service is the RPC facade wiring incoming streams to sessions, the
// ledger and the coordinator.
type Service struct {
	pb.UnimplementedBrokerServer

	ledger *Ledger
	coord  *Coordinator
	events core.IEventSink
	logger core.ILogger
	cfg    config.BrokerConfig

	mu        sync.Mutex
	producers map[producerKey]*ProducerSession
}

// NewService creates the broker service
func NewService(ledger *Ledger, coord *Coordinator, events core.IEventSink, cfg config.BrokerConfig, logger core.ILogger) *Service {
	return &Service{
		ledger:    ledger,
		coord:     coord,
		events:    events,
		logger:    logger.WithField("component", "broker_service"),
		cfg:       cfg,
		producers: make(map[producerKey]*ProducerSession),
	}
}

func (s *Service) mapError(err error) error {
	if err == nil {
		return nil
	}

	// If already a gRPC status error, return it
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidRequest), errors.Is(err, apperrors.ErrInvalidAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, apperrors.ErrProtocolViolation),
		errors.Is(err, apperrors.ErrAlreadyProducing),
		errors.Is(err, apperrors.ErrUnknownOffer),
		errors.Is(err, apperrors.ErrMissingClientID),
		errors.Is(err, apperrors.ErrSessionClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, apperrors.ErrInternalInconsistency):
		return status.Error(codes.Internal, "internal error")
	}

	return status.Error(codes.Unknown, err.Error())
}

func (s *Service) publish(eventType string, data interface{}) {
	if s.events != nil {
		s.events.Publish(eventType, data)
	}
}

// OfferProduction registers a production offer and keeps the stream open,
// pushing an empty ProductionRequest each time the coordinator asks this
// producer to start producing.
func (s *Service) OfferProduction(offer *pb.ProductionOffer, stream pb.Broker_OfferProductionServer) error {
	ctx := stream.Context()

	clientID, ok := identity.FromContext(ctx)
	if !ok {
		return s.mapError(apperrors.ErrMissingClientID)
	}
	resourceID := offer.GetResourceId()
	if resourceID == "" {
		return s.mapError(fmt.Errorf("%w: resource_id is required", apperrors.ErrInvalidRequest))
	}

	session := NewProducerSession(clientID, resourceID, s.logger)
	key := producerKey{clientID: clientID, resourceID: resourceID}

	s.mu.Lock()
	if _, exists := s.producers[key]; exists {
		s.mu.Unlock()
		return status.Error(codes.FailedPrecondition, "offer already registered for this client and resource")
	}
	s.producers[key] = session
	s.mu.Unlock()

	s.ledger.RegisterProducer(resourceID, session)
	defer func() {
		session.Close()
		s.ledger.UnregisterProducer(resourceID, session)
		s.mu.Lock()
		delete(s.producers, key)
		s.mu.Unlock()
		// Demand may now select another producer
		s.coord.Poke(resourceID)
	}()

	// Waiting consumers may already have headroom for this resource
	s.coord.Poke(resourceID)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Offer stream closed", "client_id", clientID, "resource_id", resourceID)
			return nil
		case <-session.Requests():
			sendErr := make(chan error, 1)
			go func() { sendErr <- stream.Send(&pb.ProductionRequest{}) }()
			select {
			case err := <-sendErr:
				if err != nil {
					s.logger.Info("Offer stream send failed, closing", "client_id", clientID, "resource_id", resourceID, "error", err)
					return nil
				}
			case <-time.After(time.Duration(s.cfg.SignalSendTimeoutMS) * time.Millisecond):
				s.logger.Warn("Offer stream send timed out, closing", "client_id", clientID, "resource_id", resourceID)
				return nil
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Produce accepts a production data stream. The first message must carry
// init_info naming a previously offered resource; every later message
// carries an amount added to the pool. The stream is aborted with
// RESOURCE_EXHAUSTED when consumer demand is covered.
func (s *Service) Produce(stream pb.Broker_ProduceServer) error {
	ctx := stream.Context()

	clientID, ok := identity.FromContext(ctx)
	if !ok {
		return s.mapError(apperrors.ErrMissingClientID)
	}

	first, err := stream.Recv()
	if err != nil {
		return s.mapError(fmt.Errorf("%w: stream ended before init_info", apperrors.ErrProtocolViolation))
	}
	initInfo := first.GetInitInfo()
	if initInfo == nil {
		return s.mapError(fmt.Errorf("%w: first message must be init_info", apperrors.ErrProtocolViolation))
	}
	resourceID := initInfo.GetResourceId()

	s.mu.Lock()
	session := s.producers[producerKey{clientID: clientID, resourceID: resourceID}]
	s.mu.Unlock()
	if session == nil {
		return s.mapError(fmt.Errorf("%w: resource %q", apperrors.ErrUnknownOffer, resourceID))
	}

	abort, err := session.BeginProduce()
	if err != nil {
		return s.mapError(err)
	}

	s.logger.Info("Production stream opened", "client_id", clientID, "resource_id", resourceID)

	type recvResult struct {
		msg *pb.ResourceProduction
		err error
	}
	msgCh := make(chan recvResult)
	go func() {
		for {
			m, err := stream.Recv()
			select {
			case msgCh <- recvResult{msg: m, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-abort:
			session.EndProduce(true)
			s.logger.Info("Production stream aborted, demand covered", "client_id", clientID, "resource_id", resourceID)
			return status.Error(codes.ResourceExhausted, "consumer demand covered")

		case r := <-msgCh:
			if r.err == io.EOF {
				session.EndProduce(false)
				s.coord.Poke(resourceID)
				return stream.SendAndClose(&pb.ProductionResponse{})
			}
			if r.err != nil {
				session.EndProduce(false)
				s.coord.Poke(resourceID)
				s.logger.Info("Production stream closed by client", "client_id", clientID, "resource_id", resourceID, "error", r.err)
				return nil
			}

			if _, isAmount := r.msg.GetPayload().(*pb.ResourceProduction_Amount); !isAmount {
				session.EndProduce(false)
				return s.mapError(fmt.Errorf("%w: expected amount after init_info", apperrors.ErrProtocolViolation))
			}
			amount := int64(r.msg.GetAmount())
			if amount == 0 {
				continue
			}

			if err := s.ledger.AddToPool(resourceID, amount); err != nil {
				session.EndProduce(false)
				return s.mapError(err)
			}
			telemetry.GetGlobalMetrics().AddUnitsProduced(ctx, resourceID, amount)
			s.publish("production", map[string]interface{}{
				"resource_id": resourceID,
				"client_id":   clientID,
				"amount":      amount,
				"pool":        s.ledger.Pool(resourceID),
			})

			// Evaluate synchronously so oversupply aborts before the next
			// amount is accepted.
			s.coord.Evaluate(resourceID)
		}
	}
}

// Consume validates a consumption request and streams allocated units at
// the declared rate. The server never ends the stream on its own; it runs
// until the client cancels or disconnects.
func (s *Service) Consume(req *pb.ConsumptionRequest, stream pb.Broker_ConsumeServer) error {
	ctx := stream.Context()

	params, err := ValidateConsumerParams(
		req.GetConsumerId(),
		req.GetResourceId(),
		req.GetMaxRate(),
		req.GetCurrentBufferAmount(),
		req.GetBufferLimit(),
	)
	if err != nil {
		telemetry.GetGlobalMetrics().AddConsumerRejected(ctx, req.GetResourceId())
		return s.mapError(err)
	}

	session := NewConsumerSession(params, s.cfg.DeliveryQueueDepth, s.logger)
	s.ledger.RegisterConsumer(params.ResourceID, session)
	defer func() {
		s.ledger.UnregisterConsumer(params.ResourceID, session)
		s.coord.Poke(params.ResourceID)
	}()

	s.logger.Info("Consumption stream opened",
		"consumer_id", params.ConsumerID,
		"resource_id", params.ResourceID,
		"max_rate", params.MaxRate,
		"buffer_limit", params.BufferLimit)

	// Pooled units may already be waiting
	s.coord.Evaluate(params.ResourceID)

	for {
		select {
		case <-ctx.Done():
			// A deliberate RESOURCE_EXHAUSTED cancel and a plain disconnect
			// look identical server-side; both stop allocation immediately.
			session.MarkExhausted()
			s.logger.Info("Consumption stream cancelled",
				"consumer_id", params.ConsumerID,
				"resource_id", params.ResourceID)
			return nil

		case amount := <-session.Deliveries():
			if err := stream.Send(&pb.ResourceConsumption{Amount: amount}); err != nil {
				session.Close()
				s.logger.Info("Consumption stream send failed, closing",
					"consumer_id", params.ConsumerID,
					"resource_id", params.ResourceID,
					"error", err)
				return nil
			}
			telemetry.GetGlobalMetrics().AddUnitsDelivered(ctx, params.ResourceID, int64(amount))
			s.publish("delivery", map[string]interface{}{
				"resource_id": params.ResourceID,
				"consumer_id": params.ConsumerID,
				"amount":      amount,
			})
			// A grant refused on a full delivery queue leaves units pooled;
			// the queue just drained, so re-evaluate.
			s.coord.Poke(params.ResourceID)
		}
	}
}

// Serve starts the broker gRPC server with identity interceptors and the
// standard health service, blocking until the listener fails or the
// context ends.
func (s *Service) Serve(ctx context.Context, port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	return s.ServeListener(ctx, lis)
}

// ServeListener serves on an existing listener (used by tests)
func (s *Service) ServeListener(ctx context.Context, lis net.Listener) error {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(identity.UnaryServerInterceptor(s.logger)),
		grpc.ChainStreamInterceptor(identity.StreamServerInterceptor(s.logger)),
		grpc.ConnectionTimeout(10*time.Second),
	)
	pb.RegisterBrokerServer(grpcServer, s)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("broker.v1.Broker", grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	s.logger.Info("Broker gRPC server serving", "addr", lis.Addr().String())
	return grpcServer.Serve(lis)
}
