package handler

import "github.com/lambda-feedback/greeter/internal/pipeline"

func NewIndexRoute(handler *IndexHandler) pipeline.RouteResult {
	return pipeline.AsRoute("GET /{$}", handler.Serve)
}

func NewGreetRoute(handler *UserHandler) pipeline.RouteResult {
	return pipeline.AsRoute("POST /user", handler.Greet)
}

func NewProfileRoute(handler *UserHandler) pipeline.RouteResult {
	return pipeline.AsRoute("GET /user/{id}", handler.Profile)
}
