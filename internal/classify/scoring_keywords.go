// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "github.com/pdiddy/pubstats/pkg/types"

// DefaultScoringKeywords is the weighted keyword table used by Scorer when
// none is configured. Methods vocabulary carries higher weights than
// astronomy vocabulary so that methods papers applied to astronomy are
// still attributed to their methods area.
var DefaultScoringKeywords = []types.WeightedKeyword{
	// Statistical Learning & AI
	{Keyword: "neural network", Area: AreaLearning, Weight: 15},
	{Keyword: "neural networks", Area: AreaLearning, Weight: 15},
	{Keyword: "deep learning", Area: AreaLearning, Weight: 15},
	{Keyword: "machine learning", Area: AreaLearning, Weight: 15},
	{Keyword: "artificial intelligence", Area: AreaLearning, Weight: 12},
	{Keyword: "convolutional", Area: AreaLearning, Weight: 12},
	{Keyword: "recurrent", Area: AreaLearning, Weight: 12},
	{Keyword: "transformer", Area: AreaLearning, Weight: 12},
	{Keyword: "attention", Area: AreaLearning, Weight: 10},
	{Keyword: "variational autoencoder", Area: AreaLearning, Weight: 15},
	{Keyword: "variational auto-encoder", Area: AreaLearning, Weight: 15},
	{Keyword: "autoencoder", Area: AreaLearning, Weight: 12},
	{Keyword: "auto-encoder", Area: AreaLearning, Weight: 12},
	{Keyword: "encoder", Area: AreaLearning, Weight: 8},
	{Keyword: "decoder", Area: AreaLearning, Weight: 8},
	{Keyword: "variational", Area: AreaLearning, Weight: 10},
	{Keyword: "generative model", Area: AreaLearning, Weight: 12},
	{Keyword: "generative models", Area: AreaLearning, Weight: 12},
	{Keyword: "generative", Area: AreaLearning, Weight: 8},
	{Keyword: "normalizing flows", Area: AreaLearning, Weight: 15},
	{Keyword: "normalizing flow", Area: AreaLearning, Weight: 15},
	{Keyword: "conditional flows", Area: AreaLearning, Weight: 12},
	{Keyword: "invertible", Area: AreaLearning, Weight: 10},
	{Keyword: "bijective", Area: AreaLearning, Weight: 10},
	{Keyword: "data-driven", Area: AreaLearning, Weight: 12},
	{Keyword: "data driven", Area: AreaLearning, Weight: 12},
	{Keyword: "unsupervised", Area: AreaLearning, Weight: 10},
	{Keyword: "supervised", Area: AreaLearning, Weight: 8},
	{Keyword: "semi-supervised", Area: AreaLearning, Weight: 8},
	{Keyword: "representation learning", Area: AreaLearning, Weight: 10},
	{Keyword: "latent space", Area: AreaLearning, Weight: 10},
	{Keyword: "latent", Area: AreaLearning, Weight: 6},
	{Keyword: "embedding", Area: AreaLearning, Weight: 8},
	{Keyword: "feature learning", Area: AreaLearning, Weight: 8},
	{Keyword: "feature extraction", Area: AreaLearning, Weight: 6},
	{Keyword: "dimensionality reduction", Area: AreaLearning, Weight: 8},
	{Keyword: "spectral", Area: AreaLearning, Weight: 6},
	{Keyword: "spectra", Area: AreaLearning, Weight: 4},
	{Keyword: "training", Area: AreaLearning, Weight: 4},
	{Keyword: "optimization", Area: AreaLearning, Weight: 4},
	{Keyword: "gradient", Area: AreaLearning, Weight: 4},
	{Keyword: "backpropagation", Area: AreaLearning, Weight: 6},
	{Keyword: "hyperparameter", Area: AreaLearning, Weight: 4},
	{Keyword: "cross-validation", Area: AreaLearning, Weight: 4},
	{Keyword: "random forest", Area: AreaLearning, Weight: 6},
	{Keyword: "support vector", Area: AreaLearning, Weight: 6},
	{Keyword: "gaussian process", Area: AreaLearning, Weight: 6},
	{Keyword: "kernel", Area: AreaLearning, Weight: 4},
	{Keyword: "clustering", Area: AreaLearning, Weight: 6},
	{Keyword: "classification", Area: AreaLearning, Weight: 6},
	{Keyword: "regression", Area: AreaLearning, Weight: 5},
	{Keyword: "ensemble", Area: AreaLearning, Weight: 6},
	{Keyword: "probabilistic model", Area: AreaLearning, Weight: 6},
	{Keyword: "statistical model", Area: AreaLearning, Weight: 5},
	{Keyword: "nonparametric", Area: AreaLearning, Weight: 5},
	{Keyword: "parametric", Area: AreaLearning, Weight: 3},
	{Keyword: "flexible model", Area: AreaLearning, Weight: 5},
	{Keyword: "prediction", Area: AreaLearning, Weight: 3},
	{Keyword: "predictive", Area: AreaLearning, Weight: 3},
	{Keyword: "reconstruction", Area: AreaLearning, Weight: 5},
	{Keyword: "accuracy", Area: AreaLearning, Weight: 3},
	{Keyword: "performance", Area: AreaLearning, Weight: 3},
	{Keyword: "validation", Area: AreaLearning, Weight: 3},
	{Keyword: "preprocessing", Area: AreaLearning, Weight: 4},
	{Keyword: "normalization", Area: AreaLearning, Weight: 4},
	{Keyword: "standardization", Area: AreaLearning, Weight: 4},
	{Keyword: "augmentation", Area: AreaLearning, Weight: 4},

	// Interpretability & Insight
	{Keyword: "interpretability", Area: AreaInterpretation, Weight: 15},
	{Keyword: "interpretable", Area: AreaInterpretation, Weight: 15},
	{Keyword: "explainable", Area: AreaInterpretation, Weight: 15},
	{Keyword: "explainability", Area: AreaInterpretation, Weight: 15},
	{Keyword: "explanation", Area: AreaInterpretation, Weight: 10},
	{Keyword: "trustworthy", Area: AreaInterpretation, Weight: 12},
	{Keyword: "transparency", Area: AreaInterpretation, Weight: 10},
	{Keyword: "black box", Area: AreaInterpretation, Weight: 8},
	{Keyword: "white box", Area: AreaInterpretation, Weight: 8},
	{Keyword: "feature importance", Area: AreaInterpretation, Weight: 12},
	{Keyword: "attribution", Area: AreaInterpretation, Weight: 10},
	{Keyword: "feature attribution", Area: AreaInterpretation, Weight: 12},
	{Keyword: "saliency", Area: AreaInterpretation, Weight: 8},
	{Keyword: "attention map", Area: AreaInterpretation, Weight: 8},
	{Keyword: "gradient-based", Area: AreaInterpretation, Weight: 6},
	{Keyword: "integrated gradients", Area: AreaInterpretation, Weight: 8},
	{Keyword: "shapley", Area: AreaInterpretation, Weight: 8},
	{Keyword: "shap", Area: AreaInterpretation, Weight: 8},
	{Keyword: "lime", Area: AreaInterpretation, Weight: 8},
	{Keyword: "understanding", Area: AreaInterpretation, Weight: 6},
	{Keyword: "insight", Area: AreaInterpretation, Weight: 8},
	{Keyword: "insights", Area: AreaInterpretation, Weight: 8},
	{Keyword: "interpretation", Area: AreaInterpretation, Weight: 8},
	{Keyword: "analysis", Area: AreaInterpretation, Weight: 4},
	{Keyword: "visualization", Area: AreaInterpretation, Weight: 6},
	{Keyword: "visualisation", Area: AreaInterpretation, Weight: 6},
	{Keyword: "conflicting", Area: AreaInterpretation, Weight: 6},
	{Keyword: "role", Area: AreaInterpretation, Weight: 3},
	{Keyword: "constraining", Area: AreaInterpretation, Weight: 5},
	{Keyword: "bias", Area: AreaInterpretation, Weight: 10},
	{Keyword: "systematic", Area: AreaInterpretation, Weight: 8},
	{Keyword: "systematics", Area: AreaInterpretation, Weight: 10},
	{Keyword: "gap", Area: AreaInterpretation, Weight: 8},
	{Keyword: "label", Area: AreaInterpretation, Weight: 6},
	{Keyword: "labels", Area: AreaInterpretation, Weight: 6},
	{Keyword: "independent", Area: AreaInterpretation, Weight: 5},
	{Keyword: "dependent", Area: AreaInterpretation, Weight: 4},
	{Keyword: "dependence", Area: AreaInterpretation, Weight: 4},
	{Keyword: "fairness", Area: AreaInterpretation, Weight: 8},
	{Keyword: "discrimination", Area: AreaInterpretation, Weight: 6},
	{Keyword: "equity", Area: AreaInterpretation, Weight: 6},
	{Keyword: "uncertainty quantification", Area: AreaInterpretation, Weight: 12},
	{Keyword: "uncertainty", Area: AreaInterpretation, Weight: 8},
	{Keyword: "confidence", Area: AreaInterpretation, Weight: 5},
	{Keyword: "reliability", Area: AreaInterpretation, Weight: 8},
	{Keyword: "robustness", Area: AreaInterpretation, Weight: 8},
	{Keyword: "robust", Area: AreaInterpretation, Weight: 6},
	{Keyword: "stable", Area: AreaInterpretation, Weight: 4},
	{Keyword: "stability", Area: AreaInterpretation, Weight: 5},
	{Keyword: "sensitive", Area: AreaInterpretation, Weight: 4},
	{Keyword: "sensitivity", Area: AreaInterpretation, Weight: 5},
	{Keyword: "validation", Area: AreaInterpretation, Weight: 5},
	{Keyword: "verification", Area: AreaInterpretation, Weight: 5},
	{Keyword: "testing", Area: AreaInterpretation, Weight: 4},
	{Keyword: "evaluation", Area: AreaInterpretation, Weight: 4},
	{Keyword: "assessment", Area: AreaInterpretation, Weight: 4},
	{Keyword: "diagnostic", Area: AreaInterpretation, Weight: 5},
	{Keyword: "diagnostics", Area: AreaInterpretation, Weight: 5},
	{Keyword: "calibration", Area: AreaInterpretation, Weight: 6},
	{Keyword: "calibrated", Area: AreaInterpretation, Weight: 5},
	{Keyword: "adversarial", Area: AreaInterpretation, Weight: 6},
	{Keyword: "counterfactual", Area: AreaInterpretation, Weight: 8},
	{Keyword: "perturbation", Area: AreaInterpretation, Weight: 6},
	{Keyword: "occlusion", Area: AreaInterpretation, Weight: 6},
	{Keyword: "behavior", Area: AreaInterpretation, Weight: 5},
	{Keyword: "behaviour", Area: AreaInterpretation, Weight: 5},
	{Keyword: "decision", Area: AreaInterpretation, Weight: 4},
	{Keyword: "reasoning", Area: AreaInterpretation, Weight: 6},
	{Keyword: "rationale", Area: AreaInterpretation, Weight: 6},

	// Inference & Computation
	{Keyword: "bayesian", Area: AreaInference, Weight: 15},
	{Keyword: "bayesian inference", Area: AreaInference, Weight: 18},
	{Keyword: "bayesian statistics", Area: AreaInference, Weight: 15},
	{Keyword: "bayesian analysis", Area: AreaInference, Weight: 12},
	{Keyword: "bayesian framework", Area: AreaInference, Weight: 10},
	{Keyword: "bayesian approach", Area: AreaInference, Weight: 10},
	{Keyword: "bayesian model", Area: AreaInference, Weight: 10},
	{Keyword: "inference", Area: AreaInference, Weight: 12},
	{Keyword: "statistical inference", Area: AreaInference, Weight: 15},
	{Keyword: "statistical framework", Area: AreaInference, Weight: 12},
	{Keyword: "statistical analysis", Area: AreaInference, Weight: 8},
	{Keyword: "likelihood", Area: AreaInference, Weight: 10},
	{Keyword: "likelihood-free", Area: AreaInference, Weight: 12},
	{Keyword: "posterior", Area: AreaInference, Weight: 10},
	{Keyword: "prior", Area: AreaInference, Weight: 10},
	{Keyword: "priors", Area: AreaInference, Weight: 10},
	{Keyword: "posterior distribution", Area: AreaInference, Weight: 8},
	{Keyword: "prior distribution", Area: AreaInference, Weight: 8},
	{Keyword: "marginal likelihood", Area: AreaInference, Weight: 8},
	{Keyword: "evidence", Area: AreaInference, Weight: 6},
	{Keyword: "markov chain monte carlo", Area: AreaInference, Weight: 15},
	{Keyword: "markov chain", Area: AreaInference, Weight: 12},
	{Keyword: "mcmc", Area: AreaInference, Weight: 15},
	{Keyword: "monte carlo", Area: AreaInference, Weight: 12},
	{Keyword: "sampling", Area: AreaInference, Weight: 8},
	{Keyword: "nested sampling", Area: AreaInference, Weight: 12},
	{Keyword: "importance sampling", Area: AreaInference, Weight: 10},
	{Keyword: "rejection sampling", Area: AreaInference, Weight: 8},
	{Keyword: "hamiltonian", Area: AreaInference, Weight: 10},
	{Keyword: "metropolis", Area: AreaInference, Weight: 8},
	{Keyword: "gibbs", Area: AreaInference, Weight: 8},
	{Keyword: "slice sampling", Area: AreaInference, Weight: 8},
	{Keyword: "variational inference", Area: AreaInference, Weight: 12},
	{Keyword: "variational bayes", Area: AreaInference, Weight: 12},
	{Keyword: "variational approximation", Area: AreaInference, Weight: 8},
	{Keyword: "mean field", Area: AreaInference, Weight: 6},
	{Keyword: "model selection", Area: AreaInference, Weight: 12},
	{Keyword: "model comparison", Area: AreaInference, Weight: 12},
	{Keyword: "model averaging", Area: AreaInference, Weight: 8},
	{Keyword: "information criterion", Area: AreaInference, Weight: 8},
	{Keyword: "cross-validation", Area: AreaInference, Weight: 6},
	{Keyword: "aic", Area: AreaInference, Weight: 6},
	{Keyword: "bic", Area: AreaInference, Weight: 6},
	{Keyword: "dic", Area: AreaInference, Weight: 6},
	{Keyword: "waic", Area: AreaInference, Weight: 8},
	{Keyword: "loo", Area: AreaInference, Weight: 6},
	{Keyword: "leave-one-out", Area: AreaInference, Weight: 6},
	{Keyword: "zero-inflated", Area: AreaInference, Weight: 15},
	{Keyword: "zero inflated", Area: AreaInference, Weight: 15},
	{Keyword: "hurdle model", Area: AreaInference, Weight: 12},
	{Keyword: "hurdle", Area: AreaInference, Weight: 8},
	{Keyword: "count model", Area: AreaInference, Weight: 10},
	{Keyword: "count data", Area: AreaInference, Weight: 8},
	{Keyword: "overdispersion", Area: AreaInference, Weight: 8},
	{Keyword: "negative binomial", Area: AreaInference, Weight: 10},
	{Keyword: "poisson", Area: AreaInference, Weight: 8},
	{Keyword: "binomial", Area: AreaInference, Weight: 6},
	{Keyword: "multinomial", Area: AreaInference, Weight: 6},
	{Keyword: "hierarchical", Area: AreaInference, Weight: 10},
	{Keyword: "hierarchical model", Area: AreaInference, Weight: 12},
	{Keyword: "multilevel", Area: AreaInference, Weight: 8},
	{Keyword: "mixed effects", Area: AreaInference, Weight: 8},
	{Keyword: "random effects", Area: AreaInference, Weight: 6},
	{Keyword: "fixed effects", Area: AreaInference, Weight: 4},
	{Keyword: "parameter estimation", Area: AreaInference, Weight: 8},
	{Keyword: "estimation", Area: AreaInference, Weight: 6},
	{Keyword: "estimator", Area: AreaInference, Weight: 6},
	{Keyword: "maximum likelihood", Area: AreaInference, Weight: 8},
	{Keyword: "maximum a posteriori", Area: AreaInference, Weight: 8},
	{Keyword: "method of moments", Area: AreaInference, Weight: 6},
	{Keyword: "calibrate", Area: AreaInference, Weight: 8},
	{Keyword: "calibration", Area: AreaInference, Weight: 8},
	{Keyword: "calibrated", Area: AreaInference, Weight: 6},
	{Keyword: "grid", Area: AreaInference, Weight: 6},
	{Keyword: "grids", Area: AreaInference, Weight: 6},
	{Keyword: "credible interval", Area: AreaInference, Weight: 8},
	{Keyword: "confidence interval", Area: AreaInference, Weight: 6},
	{Keyword: "prediction interval", Area: AreaInference, Weight: 6},
	{Keyword: "uncertainty quantification", Area: AreaInference, Weight: 8},
	{Keyword: "hypothesis testing", Area: AreaInference, Weight: 8},
	{Keyword: "significance", Area: AreaInference, Weight: 4},
	{Keyword: "p-value", Area: AreaInference, Weight: 4},
	{Keyword: "statistical test", Area: AreaInference, Weight: 6},
	{Keyword: "computational statistics", Area: AreaInference, Weight: 10},
	{Keyword: "numerical methods", Area: AreaInference, Weight: 6},
	{Keyword: "simulation", Area: AreaInference, Weight: 6},
	{Keyword: "bootstrap", Area: AreaInference, Weight: 6},
	{Keyword: "resampling", Area: AreaInference, Weight: 6},
	{Keyword: "permutation", Area: AreaInference, Weight: 4},
	{Keyword: "probability", Area: AreaInference, Weight: 5},
	{Keyword: "probabilistic", Area: AreaInference, Weight: 6},
	{Keyword: "stochastic", Area: AreaInference, Weight: 6},
	{Keyword: "distribution", Area: AreaInference, Weight: 4},
	{Keyword: "gaussian", Area: AreaInference, Weight: 4},
	{Keyword: "normal", Area: AreaInference, Weight: 3},
	{Keyword: "uniform", Area: AreaInference, Weight: 3},
	{Keyword: "beta", Area: AreaInference, Weight: 4},
	{Keyword: "gamma", Area: AreaInference, Weight: 4},
	{Keyword: "dirichlet", Area: AreaInference, Weight: 6},
	{Keyword: "diagnostic", Area: AreaInference, Weight: 5},
	{Keyword: "convergence", Area: AreaInference, Weight: 5},
	{Keyword: "trace", Area: AreaInference, Weight: 4},
	{Keyword: "effective sample size", Area: AreaInference, Weight: 5},
	{Keyword: "autocorrelation", Area: AreaInference, Weight: 4},
	{Keyword: "chain", Area: AreaInference, Weight: 4},
	{Keyword: "approximate", Area: AreaInference, Weight: 5},
	{Keyword: "approximation", Area: AreaInference, Weight: 5},
	{Keyword: "asymptotic", Area: AreaInference, Weight: 4},
	{Keyword: "large sample", Area: AreaInference, Weight: 4},
	{Keyword: "frequentist", Area: AreaInference, Weight: 6},
	{Keyword: "classical", Area: AreaInference, Weight: 3},
	{Keyword: "traditional", Area: AreaInference, Weight: 2},

	// Discovery & Understanding
	{Keyword: "galaxy", Area: AreaDiscovery, Weight: 4},
	{Keyword: "galaxies", Area: AreaDiscovery, Weight: 4},
	{Keyword: "stellar", Area: AreaDiscovery, Weight: 3},
	{Keyword: "star", Area: AreaDiscovery, Weight: 3},
	{Keyword: "stars", Area: AreaDiscovery, Weight: 3},
	{Keyword: "supernova", Area: AreaDiscovery, Weight: 4},
	{Keyword: "supernovae", Area: AreaDiscovery, Weight: 4},
	{Keyword: "quasar", Area: AreaDiscovery, Weight: 4},
	{Keyword: "black hole", Area: AreaDiscovery, Weight: 4},
	{Keyword: "neutron star", Area: AreaDiscovery, Weight: 4},
	{Keyword: "white dwarf", Area: AreaDiscovery, Weight: 4},
	{Keyword: "exoplanet", Area: AreaDiscovery, Weight: 4},
	{Keyword: "milky way", Area: AreaDiscovery, Weight: 4},
	{Keyword: "andromeda", Area: AreaDiscovery, Weight: 4},
	{Keyword: "local group", Area: AreaDiscovery, Weight: 4},
	{Keyword: "cluster", Area: AreaDiscovery, Weight: 3},
	{Keyword: "globular cluster", Area: AreaDiscovery, Weight: 4},
	{Keyword: "open cluster", Area: AreaDiscovery, Weight: 4},
	{Keyword: "galaxy cluster", Area: AreaDiscovery, Weight: 4},
	{Keyword: "dark matter", Area: AreaDiscovery, Weight: 5},
	{Keyword: "dark energy", Area: AreaDiscovery, Weight: 5},
	{Keyword: "cosmology", Area: AreaDiscovery, Weight: 5},
	{Keyword: "cosmological", Area: AreaDiscovery, Weight: 4},
	{Keyword: "universe", Area: AreaDiscovery, Weight: 4},
	{Keyword: "cosmic", Area: AreaDiscovery, Weight: 4},
	{Keyword: "redshift", Area: AreaDiscovery, Weight: 4},
	{Keyword: "luminosity", Area: AreaDiscovery, Weight: 2},
	{Keyword: "magnitude", Area: AreaDiscovery, Weight: 2},
	{Keyword: "photometry", Area: AreaDiscovery, Weight: 2},
	{Keyword: "spectroscopy", Area: AreaDiscovery, Weight: 2},
	{Keyword: "spectrum", Area: AreaDiscovery, Weight: 2},
	{Keyword: "spectra", Area: AreaDiscovery, Weight: 2},
	{Keyword: "emission", Area: AreaDiscovery, Weight: 2},
	{Keyword: "absorption", Area: AreaDiscovery, Weight: 2},
	{Keyword: "metallicity", Area: AreaDiscovery, Weight: 3},
	{Keyword: "abundance", Area: AreaDiscovery, Weight: 3},
	{Keyword: "chemical", Area: AreaDiscovery, Weight: 3},
	{Keyword: "kinematic", Area: AreaDiscovery, Weight: 3},
	{Keyword: "proper motion", Area: AreaDiscovery, Weight: 3},
	{Keyword: "radial velocity", Area: AreaDiscovery, Weight: 3},
	{Keyword: "distance", Area: AreaDiscovery, Weight: 3},
	{Keyword: "parallax", Area: AreaDiscovery, Weight: 3},
	{Keyword: "formation", Area: AreaDiscovery, Weight: 4},
	{Keyword: "evolution", Area: AreaDiscovery, Weight: 4},
	{Keyword: "population", Area: AreaDiscovery, Weight: 2},
	{Keyword: "populations", Area: AreaDiscovery, Weight: 2},
	{Keyword: "structure", Area: AreaDiscovery, Weight: 2},
	{Keyword: "morphology", Area: AreaDiscovery, Weight: 3},
	{Keyword: "catalog", Area: AreaDiscovery, Weight: 3},
	{Keyword: "catalogue", Area: AreaDiscovery, Weight: 3},
	{Keyword: "survey", Area: AreaDiscovery, Weight: 3},
	{Keyword: "observation", Area: AreaDiscovery, Weight: 2},
	{Keyword: "observational", Area: AreaDiscovery, Weight: 2},
	{Keyword: "telescope", Area: AreaDiscovery, Weight: 3},
	{Keyword: "instrument", Area: AreaDiscovery, Weight: 2},
	{Keyword: "gaia", Area: AreaDiscovery, Weight: 3},
	{Keyword: "hubble", Area: AreaDiscovery, Weight: 3},
	{Keyword: "jwst", Area: AreaDiscovery, Weight: 3},
	{Keyword: "kepler", Area: AreaDiscovery, Weight: 3},
	{Keyword: "sloan", Area: AreaDiscovery, Weight: 3},
	{Keyword: "sdss", Area: AreaDiscovery, Weight: 3},
	{Keyword: "desi", Area: AreaDiscovery, Weight: 3},
	{Keyword: "discovery", Area: AreaDiscovery, Weight: 5},
	{Keyword: "detection", Area: AreaDiscovery, Weight: 4},
	{Keyword: "identification", Area: AreaDiscovery, Weight: 3},
	{Keyword: "characterization", Area: AreaDiscovery, Weight: 3},
	{Keyword: "measurement", Area: AreaDiscovery, Weight: 2},
	{Keyword: "constraint", Area: AreaDiscovery, Weight: 2},
	{Keyword: "determination", Area: AreaDiscovery, Weight: 2},
}
